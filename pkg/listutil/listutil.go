// Package listutil holds small, pure helpers over integer lists.
package listutil

import (
	"fmt"
	"strings"
)

// ColumnWidth is the width each number is right-justified to.
const ColumnWidth = 8

// EvenSquares returns the square of every even number, in input order.
func EvenSquares(nums []int) []int {
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		if n%2 == 0 {
			out = append(out, n*n)
		}
	}
	return out
}

// OddCubes returns the cube of every odd number, in input order.
// Negative odd numbers count as odd.
func OddCubes(nums []int) []int {
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		if n%2 != 0 {
			out = append(out, n*n*n)
		}
	}
	return out
}

// DropFirstFour returns the elements from the fifth onward. Shorter input
// yields an empty slice. The result shares storage with nums.
func DropFirstFour(nums []int) []int {
	if len(nums) <= 4 {
		return []int{}
	}
	return nums[4:]
}

// FormatColumns right-justifies every number to ColumnWidth characters and
// joins them with ", ". Wider numbers are not truncated.
func FormatColumns(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%*d", ColumnWidth, n)
	}
	return strings.Join(parts, ", ")
}
