package dataprep

import "strings"

// Strategy selects how HandleMissingValues fills a column.
type Strategy int

const (
	// Drop removes every row missing in the column being processed. It is also
	// what Mean and Median degrade to on categorical columns.
	Drop Strategy = iota
	Mean
	Median
	Mode
)

func (s Strategy) String() string {
	switch s {
	case Mean:
		return "mean"
	case Median:
		return "median"
	case Mode:
		return "mode"
	default:
		return "drop"
	}
}

// ParseStrategy maps a strategy name to a Strategy. Unrecognised names map to
// Drop rather than failing.
func ParseStrategy(name string) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mean":
		return Mean
	case "median":
		return Median
	case "mode":
		return Mode
	default:
		return Drop
	}
}

// KnownStrategy reports whether name is one of mean, median, mode or drop.
func KnownStrategy(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mean", "median", "mode", "drop":
		return true
	}
	return false
}
