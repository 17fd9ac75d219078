package compare

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

func favors(polarity Polarity, a, b int) (side Side) {
	switch {
	case a == b:
		side = SideNone
	case (a > b) == (polarity == HigherIsBetter):
		side = SideA
	default:
		side = SideB
	}
	return side
}

func signed(side Side, magnitude string) (delta string) {
	switch side {
	case SideA:
		delta = "+" + magnitude
	case SideB:
		delta = "-" + magnitude
	default:
		delta = neutralDelta
	}
	return delta
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// percentRow compares higher-is-better scores as a percentage of b.
func percentRow(metric, label, advantage string, a, b int, unit string) (row Row) {
	row = Row{
		Metric:    metric,
		Label:     label,
		ValueA:    strconv.Itoa(a) + unit,
		ValueB:    strconv.Itoa(b) + unit,
		advantage: advantage,
	}

	if b == 0 {
		row.Delta = notApplicable
		return row
	}

	// A lead that truncates to 0% counts for neither side.
	diff := int(float64(a-b) / float64(b) * 100)
	if diff == 0 {
		row.Delta = neutralDelta
		return row
	}

	row.Favors = favors(HigherIsBetter, a, b)
	row.Delta = signed(row.Favors, strconv.Itoa(absInt(diff))+"%")
	return row
}

// absoluteRow compares raw values and reports the unit difference.
func absoluteRow(metric, label, advantage string, a, b int, unit string, polarity Polarity) (row Row) {
	row = Row{
		Metric:    metric,
		Label:     label,
		ValueA:    strconv.Itoa(a) + unit,
		ValueB:    strconv.Itoa(b) + unit,
		Favors:    favors(polarity, a, b),
		advantage: advantage,
	}
	row.Delta = signed(row.Favors, strconv.Itoa(absInt(a-b))+unit)
	return row
}

// choiceRow shows descriptive values and favors a side only when its score leads by more than margin.
func choiceRow(metric, label, advantage, valueA, valueB string, scoreA, scoreB, margin int, names [2]string, nameWidth int) (row Row) {
	row = Row{
		Metric:    metric,
		Label:     label,
		ValueA:    valueA,
		ValueB:    valueB,
		Delta:     neutralChoice,
		advantage: advantage,
	}

	switch {
	case scoreA > scoreB+margin:
		row.Favors = SideA
		row.Delta = fmt.Sprintf("🏆 %s...", truncate(names[0], nameWidth))
	case scoreB > scoreA+margin:
		row.Favors = SideB
		row.Delta = fmt.Sprintf("🏆 %s...", truncate(names[1], nameWidth))
	}
	return row
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
