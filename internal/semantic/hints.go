package semantic

import "fmt"

// HintsLevel controls whether the name-analysis pass reports non-fatal
// style diagnostics alongside its fatal ones (SPEC_FULL.md's ambient CLI
// carries this as the --hints flag). It never affects HadError or which
// fatal diagnostics are reported — only whether Warn is ever called.
type HintsLevel int

const (
	// HintsOff reports no style hints. Default for a fresh Analyzer, so
	// every existing caller that never touches SetHints keeps seeing only
	// fatal diagnostics.
	HintsOff HintsLevel = iota
	// HintsNormal additionally reports unused local variables and unused
	// function formals.
	HintsNormal
	// HintsPedantic additionally reports unused top-level variables.
	HintsPedantic
)

// ParseHintsLevel parses the CLI's --hints flag value.
func ParseHintsLevel(s string) (HintsLevel, error) {
	switch s {
	case "off", "":
		return HintsOff, nil
	case "normal":
		return HintsNormal, nil
	case "pedantic":
		return HintsPedantic, nil
	default:
		return HintsOff, fmt.Errorf("invalid hints level %q: want off, normal, or pedantic", s)
	}
}

// SetHints configures the style-hint level for this Analyzer. Call before
// Analyze; it has no effect on an analysis already run.
func (a *Analyzer) SetHints(level HintsLevel) {
	a.hints = level
}

// checkUnused reports msgUnusedVariable for every symbol in syms that name
// analysis never marked Used, at the hint level the caller already decided
// applies (HintsNormal for locals/formals, HintsPedantic for globals).
func (a *Analyzer) checkUnused(syms []*Symbol) {
	for _, sym := range syms {
		if sym == nil || sym.Used {
			continue
		}
		if sym.Kind == ValueSymbol || sym.Kind == StructVarSymbol {
			a.reporter.Warn(sym.Pos, msgUnusedVariable)
		}
	}
}
