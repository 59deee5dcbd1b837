// SPDX-License-Identifier: MIT

package lattice

import (
	"math/bits"
	"sort"
)

// maskElements lists the set bits of mask, mapped through order, sorted.
func maskElements(mask uint64, order []int) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for m := mask; m != 0; m &= m - 1 {
		out = append(out, order[bits.TrailingZeros64(m)])
	}
	sort.Ints(out)

	return out
}
