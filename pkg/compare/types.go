// Package compare builds side-by-side comparisons of two CPUs or two GPUs and picks a winner.
package compare

// Side identifies one of the two compared components.
type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "-"
	}
}

// MarshalText renders the side as "A", "B" or "-".
func (s Side) MarshalText() (text []byte, err error) {
	text = []byte(s.String())
	return text, err
}

// Polarity says which direction of a metric is "ahead".
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

// Kind is the component kind being compared.
type Kind string

const (
	KindCPU Kind = "cpu"
	KindGPU Kind = "gpu"
)

// Row is one metric of a comparison.
type Row struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
	ValueA string `json:"value_a"`
	ValueB string `json:"value_b"`
	Delta  string `json:"delta"`
	Favors Side   `json:"favors"`

	advantage string
}

// Verdict is the tally over all rows.
type Verdict struct {
	WinsA         int    `json:"wins_a"`
	WinsB         int    `json:"wins_b"`
	Winner        Side   `json:"winner"`
	WinnerName    string `json:"winner_name,omitempty"`
	Score         string `json:"score"`
	MainAdvantage string `json:"main_advantage"`
}

// Tie reports equal win counts.
func (v Verdict) Tie() bool { return v.Winner == SideNone }

// Comparison is the full result for two components.
type Comparison struct {
	Kind    Kind    `json:"kind"`
	NameA   string  `json:"name_a"`
	NameB   string  `json:"name_b"`
	Rows    []Row   `json:"rows"`
	Verdict Verdict `json:"verdict"`
}

// Verdict labels.
const (
	TieScore        = "EMPATE"
	TieAdvantage    = "Performance equivalente"
	NoAdvantage     = "Excelente Performance"
	advantagePrefix = "Vantagem em "
	neutralDelta    = "≈ Igual"
	neutralChoice   = "≈ Equivalente"
	notApplicable   = "N/A"
)
