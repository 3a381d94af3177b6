package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/market"
)

var rolesCommand = &cobra.Command{
	Use:   "roles",
	Short: "List roles in the built-in market dataset",
	Long:  "Lists the role names covered by the built-in market dataset. Other roles resolve through the remote provider (when enabled) or a generic fallback profile.",
	Run: func(_ *cobra.Command, _ []string) {
		for _, role := range market.Roles() {
			_, _ = fmt.Fprintln(os.Stdout, role)
		}
	},
}

func init() {
	rootCmd.AddCommand(rolesCommand)
}
