// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Len returns the number of parts.
func (p *Partition) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Parts)
}

// Size returns the number of elements covered.
func (p *Partition) Size() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, part := range p.Parts {
		n += len(part.Elements)
	}

	return n
}

// Canonical sorts the parts in place by their smallest element.
func (p *Partition) Canonical() {
	sort.SliceStable(p.Parts, func(i, j int) bool {
		return first(p.Parts[i].Elements) < first(p.Parts[j].Elements)
	})
}

// Validate checks that the parts are nonempty, pairwise disjoint and cover
// 0..universe-1 exactly.
func (p *Partition) Validate(universe int) error {
	if p == nil {
		return ErrNilPartition
	}
	if universe < 0 {
		return fmt.Errorf("Validate: universe %d: %w", universe, ErrOutOfRange)
	}
	seen := make([]bool, universe)
	covered := 0
	for i, part := range p.Parts {
		if len(part.Elements) == 0 {
			return fmt.Errorf("Validate: part %d: %w", i, ErrEmptyPart)
		}
		for _, e := range part.Elements {
			if e < 0 || e >= universe {
				return fmt.Errorf("Validate: part %d element %d: %w", i, e, ErrOutOfRange)
			}
			if seen[e] {
				return fmt.Errorf("Validate: element %d: %w", e, ErrOverlap)
			}
			seen[e] = true
			covered++
		}
	}
	if covered != universe {
		return fmt.Errorf("Validate: %d of %d elements: %w", covered, universe, ErrIncomplete)
	}

	return nil
}

// Equal reports whether a and b group the same elements the same way.
// Part order, parameters and values are ignored.
func Equal(a, b *Partition) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Parts) != len(b.Parts) {
		return false
	}
	byFirst := make(map[int][]int, len(b.Parts))
	for _, part := range b.Parts {
		byFirst[first(part.Elements)] = part.Elements
	}
	for _, part := range a.Parts {
		other, ok := byFirst[first(part.Elements)]
		if !ok || !sameSet(part.Elements, other) {
			return false
		}
	}

	return true
}

// Refines reports whether every part of finer lies inside a single part of
// coarser. Both must cover the same elements.
func Refines(finer, coarser *Partition) bool {
	if finer == nil || coarser == nil {
		return false
	}
	owner := make(map[int]int, coarser.Size())
	for i, part := range coarser.Parts {
		for _, e := range part.Elements {
			owner[e] = i
		}
	}
	if finer.Size() != len(owner) {
		return false
	}
	for _, part := range finer.Parts {
		if len(part.Elements) == 0 {
			return false
		}
		want, ok := owner[part.Elements[0]]
		if !ok {
			return false
		}
		for _, e := range part.Elements[1:] {
			if got, ok := owner[e]; !ok || got != want {
				return false
			}
		}
	}

	return true
}

// String renders the parts in canonical order, e.g. [{0,1} {2} {3,4}].
func (p *Partition) String() string {
	if p == nil {
		return "<nil>"
	}
	parts := make([][]int, len(p.Parts))
	for i, part := range p.Parts {
		parts[i] = part.Elements
	}
	sort.SliceStable(parts, func(i, j int) bool { return first(parts[i]) < first(parts[j]) })

	var sb strings.Builder
	sb.WriteByte('[')
	for i, els := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('{')
		for k, e := range els {
			if k > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(e))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte(']')

	return sb.String()
}

// first returns the smallest element of a sorted list, or -1 when empty.
func first(els []int) int {
	if len(els) == 0 {
		return -1
	}

	return els[0]
}

// sameSet compares two ascending lists.
func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
