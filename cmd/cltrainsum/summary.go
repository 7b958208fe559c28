package main

import (
	"github.com/spf13/cobra"

	"github.com/riordanmr/cltrainsum/internal/configutil"
	"github.com/riordanmr/cltrainsum/recordio"
	"github.com/riordanmr/cltrainsum/summarize"
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-year totals from a day-level record stream",
		RunE:  runSummaryCmd,
	}

	cmd.Flags().String("input", "days.csv", "Day-level record stream ('-' for stdin).")

	return cmd
}

func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	input, closeInput, err := openInput(configutil.FlagOrViperString(cmd, "input", "summary.input"))
	if err != nil {
		return err
	}
	defer closeInput()

	days, err := recordio.ReadDays(input)
	if err != nil {
		return err
	}
	return summarize.Write(cmd.OutOrStdout(), summarize.Summarize(days))
}
