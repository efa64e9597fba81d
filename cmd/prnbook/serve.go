package main

import (
	"prnbook/ui"

	"github.com/spf13/cobra"
)

func newServeCmd(state *cliState) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Open the local conversion page",
		Long: `Serve a small local page with a folder field, a Process button and a
Close button. Processing runs the same conversion as "prnbook convert"; its
messages go to this terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := state.container()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = state.cfg.UI.Addr
			}
			a, err := ui.NewApp(ui.Config{Addr: addr, DefaultFolder: state.cfg.Source.Dir}, c.Converter, state.logger)
			if err != nil {
				return err
			}
			return a.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides UI_ADDR)")

	return cmd
}
