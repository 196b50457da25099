package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lidofinance/near-jsonrpc/internal/utils/registry"
)

func methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the JSON-RPC methods known to the client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range registry.Names() {
				m, _ := registry.Lookup(name)
				note := m.Description
				if m.Deprecated() {
					note = fmt.Sprintf("%s (deprecated, use %s)", note, m.ReplacedBy)
				}
				fmt.Fprintf(w, "%s\t%s\n", m.Name, note)
			}
			return w.Flush()
		},
	}
}
