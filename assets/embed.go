package assets

import "embed"

// AliasesFS contains the built-in activity type alias table shipped with
// cltrainsum (assets/aliases.yaml).
//
//go:embed aliases.yaml
var AliasesFS embed.FS

// ConfigFS contains embedded config templates shipped with cltrainsum
// (under assets/config).
//
//go:embed config/**
var ConfigFS embed.FS
