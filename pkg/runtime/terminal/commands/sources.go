package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSourcesCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List registered archive categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, category := range deps.Registry.ListCategories() {
				baseURL, err := baseURLFor(deps.Settings, category)
				if err != nil {
					baseURL = "(no endpoint configured)"
				}
				fmt.Fprintf(deps.Output, "%s\t%s\n", category, baseURL)
			}
			return nil
		},
	}
}
