package indicators

// Series is an indicator sequence aligned to a suffix of the price series it
// was computed from. Offset is the number of leading bars consumed by the
// warm-up window: the value for absolute bar index i lives at
// Values[i-Offset]. ValueAt makes that arithmetic explicit and reports
// unavailability instead of leaving callers to subtract offsets by hand.
type Series struct {
	Period int
	Offset int
	Values []float64
}

// ValueAt returns the indicator value for the absolute bar index, or false
// while the indicator is still warming up (or the bar is out of range).
func (s Series) ValueAt(barIndex int) (float64, bool) {
	idx := barIndex - s.Offset
	if idx < 0 || idx >= len(s.Values) {
		return 0, false
	}

	return s.Values[idx], true
}

// Last returns the most recent value, or false if the source series never
// reached the warm-up period.
func (s Series) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}

	return s.Values[len(s.Values)-1], true
}

func (s Series) IsEmpty() bool {
	return len(s.Values) == 0
}
