package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plumekit/oulipo/pkg/constraint"
)

func listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available constraints and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(constraint.Registry())
			}
			for _, d := range constraint.Registry() {
				fmt.Fprintf(out, "%-14s %s\n", d.Tag, d.Name)
				fmt.Fprintf(out, "    %s\n", d.Description)
				fmt.Fprintf(out, "    %s : %s\n", d.Param.Label, strings.Join(d.Param.Options, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the registry as JSON")
	return cmd
}
