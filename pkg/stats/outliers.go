package stats

// IQRFactor scales the interquartile range into the fence distance.
const IQRFactor = 1.5

// Bounds is an inclusive [Lower, Upper] range.
type Bounds struct {
	Q1, Q3       float64
	Lower, Upper float64
}

// Contains reports whether v lies within the bounds, ends included.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// IQR returns Q3 - Q1.
func (b Bounds) IQR() float64 { return b.Q3 - b.Q1 }

// Quartiles returns the 25th and 75th percentiles of x.
func Quartiles(x []float64) (q1, q3 float64) {
	return Percentile(x, 25), Percentile(x, 75)
}

// IQRBounds computes the Tukey fences Q1 - 1.5*IQR and Q3 + 1.5*IQR.
// When IQR is zero the fences collapse onto the quartiles.
func IQRBounds(x []float64) Bounds {
	q1, q3 := Quartiles(x)
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - IQRFactor*iqr,
		Upper: q3 + IQRFactor*iqr,
	}
}
