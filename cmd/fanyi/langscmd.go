package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akarin-dev/fanyi/langs"
)

// newLangsCmd lists the language codes the API accepts.
func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List supported language codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, code := range langs.Codes() {
				fmt.Fprintf(out, "%-5s %s\n", code, langs.Describe(code))
			}
			return nil
		},
	}
}
