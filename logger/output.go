package logger

// Output controls what categories of CLI output are shown at each verbosity.
//
// Unlike log levels, which filter by severity, output categories control
// WHAT is printed to the terminal:
//
//	0 (default) - rendered text, errors with hints
//	1 (-v)      - + catalog load and reload notices
//	2 (-vv)     - + timing, effective config
//	3 (-vvv)    - + compiled format and options before each render

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	OutputResults OutputCategory = iota // Rendered text, command output
	OutputErrors                        // Errors with hints

	OutputCatalog // Catalog loaded/reloaded notices

	OutputTiming // Compile and render durations
	OutputConfig // Config values loaded/applied

	OutputCompiled // Compiled format and options
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:  VerbosityUser,
	OutputErrors:   VerbosityUser,
	OutputCatalog:  VerbosityInfo,
	OutputTiming:   VerbosityDebug,
	OutputConfig:   VerbosityDebug,
	OutputCompiled: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:  "results",
	OutputErrors:   "errors",
	OutputCatalog:  "catalog",
	OutputTiming:   "timing",
	OutputConfig:   "config",
	OutputCompiled: "compiled",
}

// EnabledCategories names the output categories shown at verbosity, in order
func EnabledCategories(verbosity int) []string {
	var names []string
	for c := OutputResults; c <= OutputCompiled; c++ {
		if ShouldOutput(verbosity, c) {
			names = append(names, CategoryName(c))
		}
	}
	return names
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "rendered text and errors only"
	case VerbosityInfo:
		return "above + catalog notices"
	case VerbosityDebug:
		return "above + timing and config"
	case VerbosityTrace:
		return "above + compiled formats"
	default:
		if verbosity > VerbosityTrace {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
