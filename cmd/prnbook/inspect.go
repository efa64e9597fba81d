package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"prnbook/adapters/excel"

	"github.com/spf13/cobra"
)

func newInspectCmd(state *cliState) *cobra.Command {
	var raw bool
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "Print the data sheet of a generated workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := excel.NewSheetReader(args[0], raw).ReadSheet(state.cfg.Output.SheetName)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, strings.Join(data.Headers, "\t"))
			for i, row := range data.Rows {
				if limit > 0 && i >= limit {
					fmt.Fprintf(tw, "... %d more rows\n", len(data.Rows)-limit)
					break
				}
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Show stored values instead of formatted ones")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum data rows to print (0 for all)")

	return cmd
}
