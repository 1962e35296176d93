package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akarin-dev/fanyi/config"
)

// newSchemaCmd prints the JSON Schema for the config file.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
