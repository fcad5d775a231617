package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hashicon/internal/domain"
)

// generate <seed>: compose an icon and emit its JSON description.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <seed>",
		Short: "Compose an icon for a seed and print or save its JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := icons.Render(args[0], domain.Options{
				Size:       domain.SizeCategory(sizeName),
				CustomSize: customSize,
				Circular:   circular,
			})
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(img, "", "  ")
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, append(out, '\n'), 0o644)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&sizeName, "size", string(domain.SizeMedium), "size category (see 'hashicon sizes')")
	cmd.Flags().IntVar(&customSize, "custom-size", 0, "explicit pixel size, overrides --size")
	cmd.Flags().BoolVar(&circular, "circular", false, "add circular clip and border ring")
	cmd.Flags().StringVar(&outPath, "out", "", "write JSON to a file instead of stdout")
	return cmd
}
