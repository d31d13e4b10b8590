package table

import (
	"math"
	"strconv"
)

// Value is a single cell. The zero Value is the missing marker.
type Value struct {
	num     float64
	str     string
	numeric bool
	present bool
}

// Missing returns the missing marker.
func Missing() Value { return Value{} }

// Num wraps a number. NaN is treated as missing.
func Num(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	// -0 and +0 compare equal, keep a single representation.
	return Value{num: f + 0, numeric: true, present: true}
}

// Str wraps a categorical value.
func Str(s string) Value {
	return Value{str: s, present: true}
}

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return !v.present }

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool { return v.present && v.numeric }

// Float returns the numeric payload and whether there is one.
func (v Value) Float() (float64, bool) {
	if !v.IsNumeric() {
		return 0, false
	}
	return v.num, true
}

// Text returns the categorical payload and whether there is one.
func (v Value) Text() (string, bool) {
	if !v.present || v.numeric {
		return "", false
	}
	return v.str, true
}

// Equal reports value equality. Missing equals only missing.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String formats the cell for display. Missing renders as the empty string.
func (v Value) String() string {
	switch {
	case !v.present:
		return ""
	case v.numeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return v.str
	}
}

// Less orders present values: numbers before strings, numbers ascending,
// strings lexicographically. Missing sorts last.
func (v Value) Less(o Value) bool {
	if v.present != o.present {
		return v.present
	}
	if v.numeric != o.numeric {
		return v.numeric
	}
	if v.numeric {
		return v.num < o.num
	}
	return v.str < o.str
}
