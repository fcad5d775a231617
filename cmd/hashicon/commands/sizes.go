package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"hashicon/internal/domain"
)

// sizes: print the size-category table ordered by pixel size.
func sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "Print the size-category table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := domain.DefaultSizes()
			names := make([]domain.SizeCategory, 0, len(table))
			for name := range table {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool { return table[names[i]] < table[names[j]] })
			for _, name := range names {
				fmt.Printf("%-16s %dpx\n", name, table[name])
			}
			return nil
		},
	}
}
