package notifier

import (
	"fmt"
	"strings"

	"AmISober/internal/model"
	"AmISober/internal/verdict"
)

// GaugeWidth is the number of cells in the rendered gauge bar.
const GaugeWidth = 40

// LegalNotice is appended to every report.
const LegalNotice = "This is a Widmark-formula estimate against the Road Traffic Act Article 44 " +
	"thresholds. It is approximate and cannot be used as legal evidence."

var levelIcons = map[model.StatusLevel]string{
	model.LevelNormal:     "✅",
	model.LevelAdvisory:   "ℹ️",
	model.LevelSuspension: "⚠️",
	model.LevelRevocation: "⛔",
}

// FormatBAC renders a BAC value the way every surface displays it.
func FormatBAC(bac float64) string {
	return fmt.Sprintf("%.4f%%", bac)
}

// FormatInput renders the clamped form values.
func FormatInput(in model.EstimationInput) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Weight: %g kg | Sex: %s\n", in.WeightKg, in.Sex))
	b.WriteString(fmt.Sprintf("Drink: %s × %g (%g mL/glass, %g%% ABV)\n",
		in.Beverage.Name, in.GlassCount, in.Beverage.MillilitersPerGlass, in.AbvPercent))
	b.WriteString(fmt.Sprintf("Elapsed: %g h\n", in.ElapsedHours))
	return b.String()
}

// FormatReport formats one assessment for the terminal.
func FormatReport(a *model.Assessment) string {
	var b strings.Builder

	b.WriteString("🍺 Am I sober?\n\n")
	b.WriteString(FormatInput(a.Input))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("BAC: %s  %s %s\n", FormatBAC(a.BAC), levelIcons[a.Status.Level], a.Status.Label))
	b.WriteString(FormatGauge(a.GaugePercent))
	b.WriteString(a.Status.Description + "\n\n")

	if a.HoursUntilLegal > 0 {
		b.WriteString(fmt.Sprintf("Down to the 0.03%% limit in: %s\n", formatHours(a.HoursUntilLegal)))
	}
	if a.HoursUntilSober > 0 {
		b.WriteString(fmt.Sprintf("Fully metabolized in: %s\n", formatHours(a.HoursUntilSober)))
	}

	b.WriteString("\n⚖️ " + LegalNotice + "\n")
	return b.String()
}

// FormatGauge renders a three-line gauge: pointer, colored zones, scale.
func FormatGauge(percent float64) string {
	pos := int(percent/100*float64(GaugeWidth-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > GaugeWidth-1 {
		pos = GaugeWidth - 1
	}

	var b strings.Builder
	b.WriteString(" " + strings.Repeat(" ", pos) + "▼\n")

	b.WriteString("|")
	for i := 0; i < GaugeWidth; i++ {
		x := (float64(i) + 0.5) / GaugeWidth * verdict.GaugeScale
		switch {
		case x < verdict.SuspensionThreshold:
			b.WriteByte('.')
		case x < verdict.RevocationThreshold:
			b.WriteByte('=')
		default:
			b.WriteByte('#')
		}
	}
	b.WriteString("|\n")

	scale := []rune(strings.Repeat(" ", GaugeWidth+2))
	for _, mark := range []float64{0, verdict.SuspensionThreshold, verdict.RevocationThreshold, verdict.GaugeScale} {
		label := fmt.Sprintf("%.2f", mark)
		col := 1 + int(mark/verdict.GaugeScale*float64(GaugeWidth)+0.5)
		if col+len(label) > len(scale) {
			col = len(scale) - len(label)
		}
		copy(scale[col:], []rune(label))
	}
	b.WriteString(strings.TrimRight(string(scale), " ") + "\n")
	return b.String()
}

// FormatProjection renders the elapsed-time table.
func FormatProjection(in model.EstimationInput, points []model.ProjectionPoint) string {
	var b strings.Builder
	b.WriteString("🕒 Projection\n\n")
	b.WriteString(FormatInput(in))
	b.WriteString("\n  hours   BAC        status\n")
	b.WriteString("  ─────────────────────────────\n")
	for _, p := range points {
		b.WriteString(fmt.Sprintf("  %5.1f   %-9s  %s\n", p.ElapsedHours, FormatBAC(p.BAC), p.Status.Label))
	}
	b.WriteString("\n⚖️ " + LegalNotice + "\n")
	return b.String()
}

// FormatCatalog lists the beverage catalog.
func FormatCatalog(profiles []model.BeverageProfile) string {
	var b strings.Builder
	b.WriteString("🍶 Drinks\n\n")
	for _, p := range profiles {
		b.WriteString(fmt.Sprintf("  %-10s %-24s %4g mL  %4g%%\n",
			p.Key, p.Name, p.MillilitersPerGlass, p.DefaultAbvPercent))
	}
	return b.String()
}

// FormatWatchUpdate formats one watch tick. previous is nil on the first tick.
func FormatWatchUpdate(a *model.Assessment, previous *model.StatusBucket) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("⏱ %g h elapsed | BAC %s | %s %s\n",
		a.Input.ElapsedHours, FormatBAC(a.BAC), levelIcons[a.Status.Level], a.Status.Label))
	if previous != nil && previous.Level != a.Status.Level {
		b.WriteString(fmt.Sprintf("Status changed: %s → %s\n", previous.Label, a.Status.Label))
	}
	if a.HoursUntilLegal > 0 {
		b.WriteString(fmt.Sprintf("Down to the 0.03%% limit in: %s\n", formatHours(a.HoursUntilLegal)))
	}
	return b.String()
}

func formatHours(h float64) string {
	total := int(h*60 + 0.5)
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
