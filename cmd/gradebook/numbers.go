package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alem-hub/gradebook/pkg/listutil"
)

var defaultNumbers = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// newNumbersCmd prints even squares, odd cubes and the tail after the first
// four elements, each as an 8-wide column row.
func newNumbersCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "numbers [int...]",
		Short: "Print even squares, odd cubes and the slice after the fourth element",
		Example: `  gradebook numbers
  gradebook numbers 10 11 12 13 14 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := defaultNumbers
			if len(args) > 0 {
				nums = make([]int, 0, len(args))
				for _, a := range args {
					n, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("numbers: %q is not an integer", a)
					}
					nums = append(nums, n)
				}
			}

			fmt.Fprintln(out, listutil.FormatColumns(listutil.EvenSquares(nums)))
			fmt.Fprintln(out, listutil.FormatColumns(listutil.OddCubes(nums)))
			fmt.Fprintln(out, listutil.FormatColumns(listutil.DropFirstFour(nums)))
			return nil
		},
	}
}
