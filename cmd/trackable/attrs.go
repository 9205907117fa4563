package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func attrsCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attrs [request.json]",
		Short: "Print the merged attribute map as JSON",
		Long: `Attrs reads a request like render does but prints only the merged
data-* attributes, without resolving a target element.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			attrs, err := state.engine.Merge(cmd.Context(), state.naming, req.namespaces()...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(attrs)
		},
	}
}
