package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/trackable/pkg/render"
)

func renderCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [request.json]",
		Short: "Render annotated HTML",
		Long: `Render reads a request and prints the resulting HTML.

The request names the namespaces, the children HTML and an optional
replacement. Without a file argument the request is read from stdin.

Examples:
  trackable render request.json
  echo '{"namespaces":[{"id":"ga","props":{"eventName":"buy"}}],"children":"<button>Buy</button>"}' | trackable render -p ga=ga`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			props, err := req.props()
			if err != nil {
				return err
			}
			node, err := state.engine.Render(cmd.Context(), state.naming, props)
			if err != nil {
				return err
			}
			html, err := render.RenderToString(node)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
