package compare

import (
	"fmt"
)

type headline struct {
	Advantage string
	Text      string
}

// decide tallies favorable rows. Ties are exact equality of counts; magnitudes never break them.
func decide(rows []Row, names [2]string, headlines []headline) (v Verdict) {
	for _, row := range rows {
		switch row.Favors {
		case SideA:
			v.WinsA++
		case SideB:
			v.WinsB++
		}
	}

	switch {
	case v.WinsA > v.WinsB:
		v.Winner = SideA
		v.WinnerName = names[0]
		v.Score = fmt.Sprintf("%d x %d", v.WinsA, v.WinsB)
	case v.WinsB > v.WinsA:
		v.Winner = SideB
		v.WinnerName = names[1]
		v.Score = fmt.Sprintf("%d x %d", v.WinsB, v.WinsA)
	default:
		v.Score = TieScore
		v.MainAdvantage = TieAdvantage
		return v
	}

	v.MainAdvantage = mainAdvantage(rows, v.Winner, headlines)
	return v
}

func mainAdvantage(rows []Row, winner Side, headlines []headline) (text string) {
	advantages := make(map[string]bool, len(rows))
	var first string
	for _, row := range rows {
		if row.Favors != winner {
			continue
		}
		if first == "" {
			first = row.advantage
		}
		advantages[row.advantage] = true
	}

	for _, h := range headlines {
		if advantages[h.Advantage] {
			text = h.Text
			return text
		}
	}

	if first != "" {
		text = advantagePrefix + first
		return text
	}

	text = NoAdvantage
	return text
}
