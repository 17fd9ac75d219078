package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/silenciopz/hwbench/pkg/compare"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/performance"
)

// Terminal renders engine output as lipgloss tables.
type Terminal struct {
	theme *Theme
}

// NewTerminal creates a terminal renderer. A nil theme uses DefaultTheme.
func NewTerminal(theme *Theme) (t *Terminal) {
	if theme == nil {
		theme = DefaultTheme()
	}
	t = &Terminal{theme: theme}
	return t
}

func (t *Terminal) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.theme.Header
			}
			return t.theme.Cell
		})
}

// Comparison renders the comparison rows followed by the verdict.
func (t *Terminal) Comparison(c compare.Comparison) string {
	tbl := t.newTable("Métrica", "Critério", c.NameA, c.NameB, "Diferença")
	for _, row := range c.Rows {
		tbl.Row(row.Metric, row.Label, row.ValueA, row.ValueB, row.Delta)
	}

	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return t.theme.Header
		}
		if col == 4 && row >= 0 && row < len(c.Rows) && c.Rows[row].Favors != compare.SideNone {
			return t.theme.Cell.Foreground(t.theme.Success)
		}
		return t.theme.Cell
	})

	var b strings.Builder
	b.WriteString(t.theme.Title.Render(fmt.Sprintf("%s vs %s", c.NameA, c.NameB)))
	b.WriteString("\n")
	b.WriteString(tbl.String())
	b.WriteString("\n")
	b.WriteString(t.theme.Box.Render(t.verdict(c.Verdict)))
	b.WriteString("\n")
	return b.String()
}

func (t *Terminal) verdict(v compare.Verdict) string {
	if v.Tie() {
		return fmt.Sprintf("%s · %s", v.Score, v.MainAdvantage)
	}
	return fmt.Sprintf("🏆 %s · %s · %s", t.theme.Winner.Render(v.WinnerName), v.Score, v.MainAdvantage)
}

// Performance renders a game-performance report.
func (t *Terminal) Performance(r performance.Report) string {
	tbl := t.newTable("Métrica", "Critério", "Valor", "Detalhe", "Status")
	for _, row := range r.Rows {
		tbl.Row(row.Metric, row.Label, row.Primary, row.Secondary, row.Status)
	}
	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return t.theme.Header
		}
		if col == 4 && row >= 0 && row < len(r.Rows) {
			return t.theme.Cell.Foreground(t.theme.statusColor(r.Rows[row].Status))
		}
		return t.theme.Cell
	})

	var b strings.Builder
	b.WriteString(t.theme.Title.Render(fmt.Sprintf("🎮 %s · %s", r.Game, r.Resolution)))
	b.WriteString("\n")
	b.WriteString(t.theme.Subtle.Render(fmt.Sprintf("%s + %s", r.CPU, r.GPU)))
	b.WriteString("\n")
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}

// Bottleneck renders a single bottleneck estimate.
func (t *Terminal) Bottleneck(v BottleneckView) string {
	tbl := t.newTable("Componente", "Nome", "Gaming Score")
	tbl.Row("CPU", v.CPU, strconv.Itoa(v.CPUScore))
	tbl.Row("GPU", v.GPU, strconv.Itoa(v.GPUScore))

	summary := fmt.Sprintf("Gargalo: %.1f%% · %s", v.Bottleneck.Percent, v.Bottleneck.Severity)

	var b strings.Builder
	b.WriteString(t.theme.Title.Render(fmt.Sprintf("⚡ %s · %s", v.Game, v.Resolution)))
	b.WriteString("\n")
	b.WriteString(tbl.String())
	b.WriteString("\n")
	b.WriteString(t.theme.Box.Render(summary))
	b.WriteString("\n")
	return b.String()
}

// Adequacy renders an adequacy analysis.
func (t *Terminal) Adequacy(v AdequacyView) string {
	r := v.Adequacy

	tbl := t.newTable("Componente", "Nome", "Score", "Mínimo", "Recomendado", "Status")
	tbl.Row("CPU", v.CPU, strconv.Itoa(r.CPUScore),
		fmt.Sprintf("%.0f", r.Requirements.MinCPU), fmt.Sprintf("%.0f", r.Requirements.RecCPU), StatusTitle(string(r.CPU)))
	tbl.Row("GPU", v.GPU, strconv.Itoa(r.GPUScore),
		fmt.Sprintf("%.0f", r.Requirements.MinGPU), fmt.Sprintf("%.0f", r.Requirements.RecGPU), StatusTitle(string(r.GPU)))

	summary := strings.Join([]string{
		fmt.Sprintf("%s (%.0f%% de confiança)", StatusTitle(string(r.Overall)), r.Confidence*100),
		r.Message,
		t.theme.Subtle.Render(r.Recommendation),
	}, "\n")

	var b strings.Builder
	b.WriteString(t.theme.Title.Render(fmt.Sprintf("🎯 %s · %s", v.Game, v.Resolution)))
	b.WriteString("\n")
	b.WriteString(tbl.String())
	b.WriteString("\n")
	b.WriteString(t.theme.Box.Render(summary))
	b.WriteString("\n")
	return b.String()
}

// CPUs lists processors with their derived attributes.
func (t *Terminal) CPUs(cpus []hardware.CPU) string {
	tbl := t.newTable("ID", "Nome", "Clock", "Núcleos", "TDP", "Score", "Temp. Máx.")
	for _, c := range cpus {
		tbl.Row(
			strconv.Itoa(c.ID()),
			c.Name(),
			fmt.Sprintf("%.1f/%.1f GHz", c.BaseClock(), c.TurboClock()),
			fmt.Sprintf("%d/%d", c.Cores(), c.Threads()),
			fmt.Sprintf("%dW", c.TDP()),
			strconv.Itoa(c.Score()),
			fmt.Sprintf("%d°C", c.MaxSafeTemperature()),
		)
	}
	return tbl.String() + "\n"
}

// GPUs lists graphics cards with their derived attributes.
func (t *Terminal) GPUs(gpus []hardware.GPU) string {
	tbl := t.newTable("ID", "Nome", "VRAM", "Boost", "TDP", "Score", "Resfriamento")
	for _, g := range gpus {
		tbl.Row(
			strconv.Itoa(g.ID()),
			g.Name(),
			fmt.Sprintf("%dGB", g.Memory()),
			fmt.Sprintf("%dMHz", g.TurboClock()),
			fmt.Sprintf("%dW", g.TDP()),
			strconv.Itoa(g.Score()),
			g.RecommendedCooling(),
		)
	}
	return tbl.String() + "\n"
}

// Games lists games with their derived requirement scores.
func (t *Terminal) Games(games []hardware.Game) string {
	tbl := t.newTable("ID", "Nome", "Gênero", "Multiplicador", "CPU Rec.", "GPU Rec.")
	for _, g := range games {
		req := g.Requirements()
		tbl.Row(
			strconv.Itoa(g.ID()),
			g.Name(),
			g.Genre(),
			fmt.Sprintf("%.1f", g.BottleneckMultiplier()),
			strconv.Itoa(req.RecCPU),
			strconv.Itoa(req.RecGPU),
		)
	}
	return tbl.String() + "\n"
}
