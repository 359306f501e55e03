package bot

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Houeta/price-radar/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	maxListed = 10
	barWidth  = 10
)

const demoNotice = "⚠️ Demo mode: live prices are unavailable, these results are simulated."

var (
	printer    = message.NewPrinter(language.MustParse("en-IN"))
	sparkRunes = []rune("▁▂▃▄▅▆▇█")
)

func formatPrice(price int) string {
	return printer.Sprintf("₹%d", price)
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt32 {
		return formatPrice(int(v))
	}

	return printer.Sprintf("₹%.2f", v)
}

func formatRecord(index int, rec models.PriceRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d. %s\n   %s", index, rec.Name, formatPrice(rec.Price))
	if rec.MRP != nil && rec.HasDiscount() {
		fmt.Fprintf(&sb, " (MRP %s, %d%% off)", formatPrice(*rec.MRP), rec.DiscountPercent)
	}
	fmt.Fprintf(&sb, " · %s", models.DisplayPlatform(rec.Platform))
	if rec.Rating != nil {
		fmt.Fprintf(&sb, " · ★%.1f", *rec.Rating)
	}
	if rec.URL != models.PlaceholderURL {
		fmt.Fprintf(&sb, "\n   %s", rec.URL)
	}

	return sb.String()
}

func formatView(s session) string {
	set := s.result.Data

	var sb strings.Builder
	if s.result.IsSimulated() {
		sb.WriteString(demoNotice + "\n\n")
	}

	if set.Empty() {
		fmt.Fprintf(&sb, "No results for %q. Try another search.", set.Query)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Results for %q: %d of %d (platform: %s, sort: %s)\n", set.Query, len(s.view), len(set.All), s.platform, s.sortKey)
	if len(s.view) == 0 {
		sb.WriteString("\nNothing matches the current platform and filter.")
		return sb.String()
	}

	for i, rec := range s.view[:min(len(s.view), maxListed)] {
		sb.WriteString("\n" + formatRecord(i+1, rec))
	}
	if len(s.view) > maxListed {
		fmt.Fprintf(&sb, "\n\n…and %d more. Narrow it down with /platform or /filter.", len(s.view)-maxListed)
	}
	sb.WriteString("\n\nUse /compare <n> to compare a result across platforms.")

	return sb.String()
}

func formatComparison(c models.Comparison) string {
	if !c.Available() {
		return fmt.Sprintf("Comparison unavailable for %q.", c.Product)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Compare: %s", c.Product)
	for _, row := range c.Rows {
		fmt.Fprintf(&sb, "\n%s %s %s", bar(row.RelativeFill), models.DisplayPlatform(row.Platform), formatPrice(row.Price))
		if row.Best {
			sb.WriteString(" ✅ best price")
		} else {
			fmt.Fprintf(&sb, " (+%s)", formatPrice(row.PriceDelta))
		}
	}

	return sb.String()
}

func bar(fill int) string {
	filled := max(0, min(barWidth, int(math.Round(float64(fill)/100*barWidth))))

	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func formatHistory(r models.Range, series []int) string {
	if len(series) == 0 {
		return "No price history."
	}

	lowest, highest := slices.Min(series), slices.Max(series)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Price history (%s, simulated weekly): %s\n", r, sparkline(series))
	fmt.Fprintf(&sb, "Low %s · High %s · Now %s", formatPrice(lowest), formatPrice(highest), formatPrice(series[len(series)-1]))

	return sb.String()
}

func sparkline(series []int) string {
	lowest, highest := slices.Min(series), slices.Max(series)
	span := highest - lowest

	out := make([]rune, 0, len(series))
	for _, v := range series {
		idx := len(sparkRunes) - 1
		if span > 0 {
			idx = (v - lowest) * (len(sparkRunes) - 1) / span
		}
		out = append(out, sparkRunes[idx])
	}

	return string(out)
}

func formatForecast(f models.ForecastBands) string {
	verdict := "Wait for a sale"
	if f.Recommendation == models.RecommendBuy {
		verdict = "Buy now, it is already discounted"
	}

	return fmt.Sprintf(
		"Forecast (estimate):\nNext %d days: may drop by %s–%s (typically %s)\nSale event price: %s–%s\nVerdict: %s",
		f.WindowDays,
		formatPrice(f.DropLow), formatPrice(f.DropHigh), formatPrice(f.DropTypical),
		formatPrice(f.SaleLow), formatPrice(f.SaleHigh),
		verdict,
	)
}

func formatInsight(in *models.Insight) string {
	var sb strings.Builder
	if in.Comparison.Mode == models.ModeSimulated {
		sb.WriteString(demoNotice + "\n\n")
	}

	sb.WriteString(formatComparison(in.Comparison))
	sb.WriteString("\n\n" + formatHistory(in.Range, in.History))
	sb.WriteString("\n\n" + formatForecast(in.Forecast))
	sb.WriteString("\n\nUse /history 1M|3M|6M for another range.")

	return sb.String()
}

func formatAlert(a models.Alert) string {
	return fmt.Sprintf("#%d %s at or below %s (%s, created %s)", a.ID, a.Product, formatAmount(a.TargetPrice), a.Email, a.CreatedAt)
}

func formatTrigger(t models.Trigger) string {
	msg := fmt.Sprintf(
		"🔔 Price alert #%d: %s is now %s on %s (target %s)",
		t.Alert.ID,
		t.Record.Name,
		formatPrice(t.Record.Price),
		models.DisplayPlatform(t.Record.Platform),
		formatAmount(t.Alert.TargetPrice),
	)
	if t.Record.URL != models.PlaceholderURL {
		msg += "\n" + t.Record.URL
	}

	return msg
}
