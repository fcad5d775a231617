package commands

import (
	"github.com/spf13/cobra"

	"hashicon/internal/domain"
	"hashicon/internal/services/render"
)

var (
	sizeName   string
	customSize int
	circular   bool
	outPath    string

	icons domain.IconService
)

func Execute() error {
	root := &cobra.Command{
		Use:   "hashicon",
		Short: "Deterministic visual identities from seed strings",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			icons = render.New(domain.DefaultSizes(), nil)
		},
	}

	root.AddCommand(generateCmd(), inspectCmd(), sizesCmd())
	return root.Execute()
}
