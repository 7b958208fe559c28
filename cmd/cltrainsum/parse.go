package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riordanmr/cltrainsum/internal/clifmt"
	"github.com/riordanmr/cltrainsum/internal/configutil"
	"github.com/riordanmr/cltrainsum/internal/logutil"
	"github.com/riordanmr/cltrainsum/internal/pathutil"
	"github.com/riordanmr/cltrainsum/recordio"
	"github.com/riordanmr/cltrainsum/trainlog"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse the raw log into normalized activity and day records",
		RunE:  runParseCmd,
	}

	cmd.Flags().String("input", "-", "Raw log path ('-' for stdin).")
	cmd.Flags().String("activities-out", "activities.csv", "Activity-level output path.")
	cmd.Flags().String("days-out", "days.csv", "Day-level output path.")
	cmd.Flags().String("marker", string(trainlog.DefaultContinuationMarker), "Continuation line marker byte.")
	cmd.Flags().Int("start-year", 0, "Ambient year before the first *** YYYY marker (0 requires a marker).")
	cmd.Flags().String("scale-marker", string(trainlog.DefaultScaleMarker), "Letter flagging a biased-scale weight reading.")
	cmd.Flags().Float64("scale-bias", trainlog.DefaultScaleBias, "Pounds added to flagged weight readings.")
	cmd.Flags().Float64("weight-min", trainlog.DefaultWeightMin, "Lower bound of the plausible weight window.")
	cmd.Flags().Float64("weight-max", trainlog.DefaultWeightMax, "Upper bound (exclusive) of the plausible weight window.")
	cmd.Flags().Bool("report", true, "Print unit and type frequency tables at end of run.")

	return cmd
}

func runParseCmd(cmd *cobra.Command, _ []string) error {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	cfg := trainlog.DefaultConfig()
	cfg.ContinuationMarker, err = markerByte(configutil.FlagOrViperString(cmd, "marker", "parse.continuation_marker"))
	if err != nil {
		return fmt.Errorf("invalid continuation marker: %w", err)
	}
	cfg.ScaleMarker, err = markerByte(configutil.FlagOrViperString(cmd, "scale-marker", "parse.scale_marker"))
	if err != nil {
		return fmt.Errorf("invalid scale marker: %w", err)
	}
	cfg.StartYear = configutil.FlagOrViperInt(cmd, "start-year", "parse.start_year")
	cfg.ScaleBias = configutil.FlagOrViperFloat64(cmd, "scale-bias", "parse.scale_bias")
	cfg.WeightMin = configutil.FlagOrViperFloat64(cmd, "weight-min", "parse.weight_min")
	cfg.WeightMax = configutil.FlagOrViperFloat64(cmd, "weight-max", "parse.weight_max")
	cfg.TypeAliases = viper.GetStringMapString("parse.type_aliases")

	parser, err := trainlog.NewParser(cfg, trainlog.LineReporter{W: cmd.ErrOrStderr()}, logger)
	if err != nil {
		return err
	}

	input, closeInput, err := openInput(configutil.FlagOrViperString(cmd, "input", "parse.input"))
	if err != nil {
		return err
	}
	defer closeInput()

	activitiesPath := pathutil.ExpandHomePath(configutil.FlagOrViperString(cmd, "activities-out", "parse.activities_out"))
	daysPath := pathutil.ExpandHomePath(configutil.FlagOrViperString(cmd, "days-out", "parse.days_out"))

	activities, err := os.Create(activitiesPath)
	if err != nil {
		return err
	}
	defer activities.Close()
	days, err := os.Create(daysPath)
	if err != nil {
		return err
	}
	defer days.Close()

	logger.Info("parsing", "activities_out", activitiesPath, "days_out", daysPath)

	em := recordio.StreamEmitter{Activities: activities, Days: days}
	if err := parser.Run(input, em); err != nil {
		return err
	}
	if err := activities.Close(); err != nil {
		return err
	}
	if err := days.Close(); err != nil {
		return err
	}

	if configutil.FlagOrViperBool(cmd, "report", "parse.report") {
		out := cmd.OutOrStdout()
		clifmt.PrintCountTable(out, clifmt.CountTableOptions{
			Title:      "Units observed",
			Counts:     parser.UnitCounts(),
			EmptyText:  "No units were observed.",
			NameHeader: "UNIT",
		})
		fmt.Fprintln(out)
		clifmt.PrintCountTable(out, clifmt.CountTableOptions{
			Title:      "Activity types observed",
			Counts:     parser.TypeCounts(),
			EmptyText:  "No activities were observed.",
			NameHeader: "TYPE",
		})
	}
	return nil
}

func markerByte(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("want exactly one byte, got %q", s)
	}
	return s[0], nil
}

func openInput(path string) (io.Reader, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(pathutil.ExpandHomePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
