package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashicon/internal/hash"
	"hashicon/internal/icon/cells"
	"hashicon/internal/icon/palette"
)

// inspect <seed>: show what the pipeline derives from a seed.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <seed>",
		Short: "Show the derived chain head, palette and pattern for a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := hash.Chain(args[0], 5)
			if err != nil {
				return err
			}
			fmt.Printf("Chain head: %d %d %d %d %d\n", chain[0], chain[1], chain[2], chain[3], chain[4])
			for i := 0; i < 3; i++ {
				fmt.Printf("Palette %d:  %s\n", i, palette.FromHash(chain[i]))
			}
			fmt.Printf("Background: %s\n", palette.ShadeFromHash(chain[3], true))
			fmt.Printf("Pattern:    %s\n", cells.SelectPattern(chain[4]))
			return nil
		},
	}
}
