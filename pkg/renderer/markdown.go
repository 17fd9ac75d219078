package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/silenciopz/hwbench/pkg/compare"
	"github.com/silenciopz/hwbench/pkg/hardware"
	"github.com/silenciopz/hwbench/pkg/performance"
)

// escapeCell keeps pipes inside table cells from splitting columns.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func writeTable(b *strings.Builder, headers []string, rows [][]string) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCell(cell)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

// ComparisonMarkdown renders a comparison as a Markdown document.
func ComparisonMarkdown(c compare.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s vs %s\n\n", c.NameA, c.NameB)

	rows := make([][]string, 0, len(c.Rows))
	for _, row := range c.Rows {
		rows = append(rows, []string{row.Metric, row.Label, row.ValueA, row.ValueB, row.Delta})
	}
	writeTable(&b, []string{"Métrica", "Critério", escapeCell(c.NameA), escapeCell(c.NameB), "Diferença"}, rows)

	b.WriteString("\n## Veredito\n\n")
	if c.Verdict.Tie() {
		fmt.Fprintf(&b, "**%s**: %s\n", c.Verdict.Score, c.Verdict.MainAdvantage)
		return b.String()
	}
	fmt.Fprintf(&b, "**%s** vence por %s. %s.\n", c.Verdict.WinnerName, c.Verdict.Score, c.Verdict.MainAdvantage)
	return b.String()
}

// PerformanceMarkdown renders a game-performance report as a Markdown document.
func PerformanceMarkdown(r performance.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", r.Game, r.Resolution)
	fmt.Fprintf(&b, "- **CPU:** %s (gaming score %d)\n", r.CPU, r.CPUScore)
	fmt.Fprintf(&b, "- **GPU:** %s (gaming score %d)\n\n", r.GPU, r.GPUScore)

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{row.Metric, row.Label, row.Primary, row.Secondary, row.Status})
	}
	writeTable(&b, []string{"Métrica", "Critério", "Valor", "Detalhe", "Status"}, rows)
	return b.String()
}

// BottleneckMarkdown renders a bottleneck estimate as a Markdown document.
func BottleneckMarkdown(v BottleneckView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Gargalo: %s (%s)\n\n", v.Game, v.Resolution)
	writeTable(&b, []string{"Componente", "Nome", "Gaming Score"}, [][]string{
		{"CPU", v.CPU, fmt.Sprintf("%d", v.CPUScore)},
		{"GPU", v.GPU, fmt.Sprintf("%d", v.GPUScore)},
	})
	fmt.Fprintf(&b, "\n**%.1f%%** · %s\n", v.Bottleneck.Percent, v.Bottleneck.Severity)
	return b.String()
}

// AdequacyMarkdown renders an adequacy analysis as a Markdown document.
func AdequacyMarkdown(v AdequacyView) string {
	r := v.Adequacy

	var b strings.Builder
	fmt.Fprintf(&b, "# Adequação: %s (%s)\n\n", v.Game, v.Resolution)
	writeTable(&b, []string{"Componente", "Nome", "Score", "Mínimo", "Recomendado", "Status"}, [][]string{
		{"CPU", v.CPU, fmt.Sprintf("%d", r.CPUScore), fmt.Sprintf("%.0f", r.Requirements.MinCPU),
			fmt.Sprintf("%.0f", r.Requirements.RecCPU), StatusTitle(string(r.CPU))},
		{"GPU", v.GPU, fmt.Sprintf("%d", r.GPUScore), fmt.Sprintf("%.0f", r.Requirements.MinGPU),
			fmt.Sprintf("%.0f", r.Requirements.RecGPU), StatusTitle(string(r.GPU))},
	})
	fmt.Fprintf(&b, "\n## %s\n\n", StatusTitle(string(r.Overall)))
	fmt.Fprintf(&b, "%s\n\n%s\n\nConfiança: %.0f%%\n", r.Message, r.Recommendation, r.Confidence*100)
	return b.String()
}

func CPUsMarkdown(cpus []hardware.CPU) string {
	var b strings.Builder
	b.WriteString("# CPUs\n\n")
	rows := make([][]string, 0, len(cpus))
	for _, c := range cpus {
		rows = append(rows, []string{
			strconv.Itoa(c.ID()),
			c.Name(),
			fmt.Sprintf("%.1f/%.1f GHz", c.BaseClock(), c.TurboClock()),
			fmt.Sprintf("%d/%d", c.Cores(), c.Threads()),
			fmt.Sprintf("%dW", c.TDP()),
			strconv.Itoa(c.Score()),
		})
	}
	writeTable(&b, []string{"ID", "Nome", "Clock", "Núcleos", "TDP", "Score"}, rows)
	return b.String()
}

func GPUsMarkdown(gpus []hardware.GPU) string {
	var b strings.Builder
	b.WriteString("# GPUs\n\n")
	rows := make([][]string, 0, len(gpus))
	for _, g := range gpus {
		rows = append(rows, []string{
			strconv.Itoa(g.ID()),
			g.Name(),
			fmt.Sprintf("%dGB", g.Memory()),
			fmt.Sprintf("%dMHz", g.TurboClock()),
			fmt.Sprintf("%dW", g.TDP()),
			strconv.Itoa(g.Score()),
		})
	}
	writeTable(&b, []string{"ID", "Nome", "VRAM", "Boost", "TDP", "Score"}, rows)
	return b.String()
}

func GamesMarkdown(games []hardware.Game) string {
	var b strings.Builder
	b.WriteString("# Jogos\n\n")
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		req := g.Requirements()
		rows = append(rows, []string{
			strconv.Itoa(g.ID()),
			g.Name(),
			g.Genre(),
			fmt.Sprintf("%.1f", g.BottleneckMultiplier()),
			strconv.Itoa(req.RecCPU),
			strconv.Itoa(req.RecGPU),
		})
	}
	writeTable(&b, []string{"ID", "Nome", "Gênero", "Multiplicador", "CPU Rec.", "GPU Rec."}, rows)
	return b.String()
}
