package catalog

import (
	"fmt"
	"strconv"
)

// Comparison is the precomputed result the compare tool returns. On the
// wire a and b sit next to the comparison object, not inside it.
type Comparison struct {
	A              *Product `json:"-"`
	B              *Product `json:"-"`
	Diffs          []string `json:"diffs"`
	Recommendation string   `json:"recommendation"`
}

// Diffs emits one human-readable line per field whose values differ.
// A field present on one side and absent on the other counts as
// differing. The field set is symmetric in a and b; only the wording
// direction changes.
func Diffs(a, b *Product) []string {
	diffs := []string{}

	if !eqField(a.Price, b.Price) {
		diffs = append(diffs, fmt.Sprintf("Price: %s $%s vs %s $%s",
			a.Name, FormatValue(a.Price), b.Name, FormatValue(b.Price)))
	}
	if !eqField(a.BatteryHours, b.BatteryHours) {
		diffs = append(diffs, fmt.Sprintf("Battery (hours): %s vs %s",
			FormatValue(a.BatteryHours), FormatValue(b.BatteryHours)))
	}
	if !eqField(a.RAMGB, b.RAMGB) {
		diffs = append(diffs, fmt.Sprintf("RAM (GB): %s vs %s",
			FormatValue(a.RAMGB), FormatValue(b.RAMGB)))
	}
	if !eqField(a.StorageGB, b.StorageGB) {
		diffs = append(diffs, fmt.Sprintf("Storage (GB): %s vs %s",
			FormatValue(a.StorageGB), FormatValue(b.StorageGB)))
	}
	if !eqField(a.Rating, b.Rating) {
		diffs = append(diffs, fmt.Sprintf("Rating: %s vs %s",
			FormatValue(a.Rating), FormatValue(b.Rating)))
	}

	return diffs
}

// Score weighs rating, battery and RAM against price. A missing field
// scores as zero; the diff text above still reports it as absent.
func Score(p *Product) float64 {
	return numOrZero(p.Rating)*2 +
		numOrZero(p.BatteryHours)/10 +
		numOrZero(p.RAMGB)/2 -
		numOrZero(p.Price)/200
}

// Recommend names the operand with the strictly higher score. Ties
// resolve to b, deterministically.
func Recommend(a, b *Product) string {
	if Score(a) > Score(b) {
		return a.Name
	}
	return b.Name
}

// Compare resolves the full comparison for two already-fetched products.
func Compare(a, b *Product) *Comparison {
	return &Comparison{
		A:              a,
		B:              b,
		Diffs:          Diffs(a, b),
		Recommendation: Recommend(a, b),
	}
}

// FormatValue renders an optional numeric field for user-facing text.
func FormatValue(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func eqField(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func numOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
