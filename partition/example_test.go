// SPDX-License-Identifier: MIT

package partition_test

import (
	"fmt"

	"github.com/katalvlaran/optpart/partition"
)

// ExampleRefines compares two groupings of five elements.
func ExampleRefines() {
	coarse := &partition.Partition{Parts: []partition.Part{
		{Elements: []int{0, 1, 2}},
		{Elements: []int{3, 4}},
	}}
	fine := &partition.Partition{Parts: []partition.Part{
		{Elements: []int{3, 4}},
		{Elements: []int{0}},
		{Elements: []int{1, 2}},
	}}
	fmt.Println(fine, partition.Refines(fine, coarse), partition.Equal(fine, coarse))
	// Output:
	// [{0} {1,2} {3,4}] true false
}
