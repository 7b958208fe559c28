package trainlog

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riordanmr/cltrainsum/assets"
)

// Canonical activity type codes used for day aggregation.
const (
	TypeBike = "b"
	TypeCore = "c"
	TypeRun  = "r"
	TypeSwim = "s"
	TypeWalk = "w"
)

// Normalizer maps raw activity type codes onto the canonical set. The
// table is the embedded alias file, optionally extended from config; codes
// absent from the table pass through unchanged so rare ad hoc codes stay
// visible in the frequency report.
type Normalizer struct {
	aliases map[string]string
}

type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// NewNormalizer builds the lookup table once, merging extra entries over
// the built-in ones.
func NewNormalizer(extra map[string]string) (*Normalizer, error) {
	raw, err := assets.AliasesFS.ReadFile("aliases.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin alias table: %w", err)
	}
	var file aliasFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse builtin alias table: %w", err)
	}

	aliases := make(map[string]string, len(file.Aliases)+len(extra))
	for code, canon := range file.Aliases {
		aliases[normalizeCode(code)] = normalizeCode(canon)
	}
	for code, canon := range extra {
		code = normalizeCode(code)
		canon = normalizeCode(canon)
		if code == "" || canon == "" {
			continue
		}
		aliases[code] = canon
	}
	return &Normalizer{aliases: aliases}, nil
}

// Canonical maps a raw (lowercased) type code; unknown codes come back
// unchanged.
func (n *Normalizer) Canonical(raw string) string {
	if canon, ok := n.aliases[raw]; ok {
		return canon
	}
	return raw
}

// KnownCodes returns the raw codes in the table, sorted.
func (n *Normalizer) KnownCodes() []string {
	codes := make([]string, 0, len(n.aliases))
	for code := range n.aliases {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
