package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riordanmr/cltrainsum/internal/configutil"
	"github.com/riordanmr/cltrainsum/trainlog"
)

func newTrimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trim <year>",
		Short: "Echo the raw log from the first *** <year> marker onward",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrimCmd,
	}

	cmd.Flags().String("input", "-", "Raw log path ('-' for stdin).")

	return cmd
}

func runTrimCmd(cmd *cobra.Command, args []string) error {
	wantYear := strings.TrimSpace(args[0])
	if len(wantYear) != 4 {
		return fmt.Errorf("want a four-digit year, got %q", wantYear)
	}

	input, closeInput, err := openInput(configutil.FlagOrViperString(cmd, "input", "trim.input"))
	if err != nil {
		return err
	}
	defer closeInput()

	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(input)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	echoing := false
	for sc.Scan() {
		line := sc.Text()
		if !echoing {
			if year, ok := trainlog.ScanYearMarker(line); ok && fmt.Sprintf("%04d", year) == wantYear {
				echoing = true
			}
		}
		if echoing {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}
