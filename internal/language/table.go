package language

import "math"

// Entry is a single TOEFL/Duolingo breakpoint.
type Entry struct {
	TOEFL       float64 `json:"toefl"`
	Duolingo    float64 `json:"duolingo"`
	Description string  `json:"description"`
}

// table must stay ascending on both columns.
var table = []Entry{
	{TOEFL: 60, Duolingo: 85, Description: "Minimum admission level"},
	{TOEFL: 67, Duolingo: 90, Description: "Minimum admission level"},
	{TOEFL: 68, Duolingo: 95, Description: "Typical admission level"},
	{TOEFL: 78, Duolingo: 100, Description: "Typical admission level"},
	{TOEFL: 79, Duolingo: 105, Description: "Recommended score"},
	{TOEFL: 93, Duolingo: 110, Description: "Recommended score"},
	{TOEFL: 94, Duolingo: 115, Description: "Competitive score"},
	{TOEFL: 101, Duolingo: 120, Description: "Competitive score"},
	{TOEFL: 102, Duolingo: 125, Description: "Top university level"},
	{TOEFL: 109, Duolingo: 130, Description: "Top university level"},
	{TOEFL: 110, Duolingo: 135, Description: "Elite university level"},
	{TOEFL: 120, Duolingo: 160, Description: "Elite university level"},
}

// Table returns a copy of the conversion table.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// ToeflToDuolingo interpolates a TOEFL score onto the Duolingo scale.
func ToeflToDuolingo(score float64) float64 {
	if score <= minTOEFL {
		return minDuolingo
	}
	if score >= maxTOEFL {
		return maxDuolingo
	}
	return interpolate(score,
		func(e Entry) float64 { return e.TOEFL },
		func(e Entry) float64 { return e.Duolingo },
	)
}

// DuolingoToToefl interpolates a Duolingo score onto the TOEFL scale.
func DuolingoToToefl(score float64) float64 {
	if score <= minDuolingo {
		return minTOEFL
	}
	if score >= maxDuolingo {
		return maxTOEFL
	}
	return interpolate(score,
		func(e Entry) float64 { return e.Duolingo },
		func(e Entry) float64 { return e.TOEFL },
	)
}

// interpolate finds the bracketing breakpoints on the from column and returns
// the rounded linear interpolation on the to column. Inputs below the first
// breakpoint fall back to the chord between the first and last rows.
func interpolate(score float64, from, to func(Entry) float64) float64 {
	for _, entry := range table {
		if from(entry) == score {
			return to(entry)
		}
	}

	lower, upper := table[0], table[len(table)-1]
	for i := 0; i < len(table)-1; i++ {
		if score >= from(table[i]) && score <= from(table[i+1]) {
			lower, upper = table[i], table[i+1]
			break
		}
	}

	ratio := (score - from(lower)) / (from(upper) - from(lower))
	return math.Round(to(lower) + ratio*(to(upper)-to(lower)))
}
