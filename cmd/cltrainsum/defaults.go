package main

import (
	"github.com/spf13/viper"

	"github.com/riordanmr/cltrainsum/trainlog"
)

func initViperDefaults() {
	// Parse engine defaults (used when flags aren't given).
	viper.SetDefault("parse.continuation_marker", string(trainlog.DefaultContinuationMarker))
	viper.SetDefault("parse.start_year", 0)
	viper.SetDefault("parse.scale_marker", string(trainlog.DefaultScaleMarker))
	viper.SetDefault("parse.scale_bias", trainlog.DefaultScaleBias)
	viper.SetDefault("parse.weight_min", trainlog.DefaultWeightMin)
	viper.SetDefault("parse.weight_max", trainlog.DefaultWeightMax)
	viper.SetDefault("parse.type_aliases", map[string]string{})
}
