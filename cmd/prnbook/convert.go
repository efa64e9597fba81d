package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"prnbook/app"

	"github.com/spf13/cobra"
)

func newConvertCmd(state *cliState) *cobra.Command {
	var encoding string
	var summary bool

	cmd := &cobra.Command{
		Use:   "convert [folder]",
		Short: "Convert every .prn group in a folder into workbooks",
		Long: `Convert groups the .prn files of a folder and writes one workbook per group.
Existing workbooks with the same name are overwritten.

The folder defaults to SOURCE_DIR. Input is read as UTF-8 unless --encoding
or INPUT_ENCODING names another encoding (e.g. gbk).

Example: prnbook convert "D:/measurements/2024-05-02" --summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := state.cfg.Source.Dir
			if len(args) == 1 {
				folder = strings.TrimSpace(args[0])
			}
			if encoding != "" {
				state.cfg.Source.Encoding = encoding
			}
			return runConvert(cmd, state, folder, summary)
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "Input text encoding (overrides INPUT_ENCODING)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print per-column statistics for each workbook")

	return cmd
}

func runConvert(cmd *cobra.Command, state *cliState, folder string, summary bool) error {
	c, err := state.container()
	if err != nil {
		return err
	}

	report, err := c.Converter.Convert(cmd.Context(), folder)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch report.Outcome {
	case app.OutcomeInvalidSource, app.OutcomeNoInputs:
		fmt.Fprintln(out, report.Diagnostic)
		return nil
	}

	for _, path := range report.Saved() {
		fmt.Fprintf(out, "saved %s\n", path)
	}
	if summary {
		printSummary(out, report)
	}
	return nil
}

func printSummary(out io.Writer, report *app.Report) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, g := range report.Groups {
		fmt.Fprintf(tw, "\n%s\t(%d files)\n", g.Key, len(g.Files))
		fmt.Fprintln(tw, "column\tlabel\tvalues\tmin\tmax\tmean")
		for _, col := range g.Columns {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\t%.3f\t%.3f\n",
				col.Column, col.Label, col.Count, col.Min, col.Max, col.Mean)
		}
		for _, name := range g.Ignored {
			fmt.Fprintf(tw, "-\t%s\tignored\t\t\t\n", name)
		}
	}
	if len(report.Ungrouped) > 0 {
		fmt.Fprintf(tw, "\nungrouped: %s\n", strings.Join(report.Ungrouped, ", "))
	}
	tw.Flush()
}
