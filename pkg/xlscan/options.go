// Package xlscan classifies workbook cells as formulas or literals and
// reports keyword matches and cached formula values.
package xlscan

import "log/slog"

// Mode represents the scan mode.
type Mode string

const (
	// ModeLight reports keyword matches and formula text without resolving cached values.
	ModeLight Mode = "light"
	// ModeStandard reports keyword matches and formulas with their cached values.
	ModeStandard Mode = "standard"
	// ModeVerbose additionally lists every literal cell.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), true
	}
	return "", false
}

// DefaultKeywords is the keyword set used when Options.Keywords is nil.
var DefaultKeywords = []string{
	"tan", "diameter", "id", "wall", "wt", "circ", "area", "grid", "hour",
	"segment", "clock", "shell", "dome", "paut", "pec", "tofd", "length",
	"axis", "access", "scan", "analysis", "report", "total",
}

// Options configures scan behavior.
type Options struct {
	// Mode specifies the scan mode (light, standard, verbose).
	Mode Mode
	// Keywords is the keyword set matched against cell text.
	// If nil, DefaultKeywords is used; an empty non-nil slice disables matching.
	Keywords []string
	// IncludeLiterals specifies whether every literal cell is listed.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeLiterals *bool
	// Sheets restricts the scan to the named sheets. Empty means all sheets.
	Sheets []string
	// Logger receives debug and warning messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default scan options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeLiterals returns whether to list literal cells.
func (o Options) ShouldIncludeLiterals() bool {
	if o.IncludeLiterals != nil {
		return *o.IncludeLiterals
	}
	return o.Mode == ModeVerbose
}

// ShouldResolveValues returns whether formula cells get their cached values.
func (o Options) ShouldResolveValues() bool {
	return o.Mode != ModeLight
}

func (o Options) keywords() []string {
	if o.Keywords == nil {
		return DefaultKeywords
	}
	return o.Keywords
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
