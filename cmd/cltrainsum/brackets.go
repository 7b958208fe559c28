package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riordanmr/cltrainsum/internal/configutil"
)

func newBracketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Extract bracketed substrings from each raw log line",
		RunE:  runBracketsCmd,
	}

	cmd.Flags().String("input", "-", "Raw log path ('-' for stdin).")

	return cmd
}

func runBracketsCmd(cmd *cobra.Command, _ []string) error {
	input, closeInput, err := openInput(configutil.FlagOrViperString(cmd, "input", "brackets.input"))
	if err != nil {
		return err
	}
	defer closeInput()

	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(input)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		for {
			open := strings.IndexByte(line, '[')
			if open < 0 {
				break
			}
			close := strings.IndexByte(line[open+1:], ']')
			if close < 0 {
				break
			}
			close += open + 1
			if _, err := fmt.Fprintln(out, line[open+1:close]); err != nil {
				return err
			}
			line = line[close+1:]
		}
	}
	return sc.Err()
}
