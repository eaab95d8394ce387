package cli

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
)

func newConfigCommand(a *app) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write it with --write",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write != "" {
				if err := a.config.Save(write); err != nil {
					return err
				}
				core.LogInfo("configuration written to %s", write)
				return nil
			}
			enc := toml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndentTables(true)
			return enc.Encode(a.config)
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "write the configuration to this file instead of printing it")
	return cmd
}
