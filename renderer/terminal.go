package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/stockavg"
	"github.com/shopspring/decimal"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(highlight)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 2).
			MarginRight(1)

	cardTitleStyle = lipgloss.NewStyle().Foreground(subtle)
	cardValueStyle = lipgloss.NewStyle().Bold(true)

	barStyle     = lipgloss.NewStyle().Foreground(highlight)
	averageStyle = lipgloss.NewStyle().Foreground(special)
	labelStyle   = lipgloss.NewStyle().Width(12)
)

// BarWidth is the length of the longest bar drawn by TerminalCharts.
const BarWidth = 30

// TerminalSummary renders the report heading and its summary as three cards.
func TerminalSummary(r *stockavg.Report) string {
	card := func(title, value string) string {
		return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Average Price", r.AveragePrice.String()),
		card("Total Shares", r.TotalShares.String()),
		card("Total Investment", r.TotalInvestment.String()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(r.Heading()),
		cardTitleStyle.Render("Generated on: "+r.Date()),
		cards,
	)
}

// TerminalCharts renders the three chart views as horizontal bars: price
// comparison against the average, investment distribution and price trend.
func TerminalCharts(c *stockavg.Charts) string {
	var b strings.Builder

	// the price scale is shared by the comparison and the trend
	top := c.AveragePrice
	for _, p := range c.Points {
		if p.Price.GreaterThan(top) {
			top = p.Price
		}
	}
	priceBar := func(label string, price stockavg.Money, style lipgloss.Style) string {
		var n int
		if top.IsPositive() {
			n = barLength(price.Ratio(top))
		}
		return fmt.Sprintf("%s %s %s\n", labelStyle.Render(label), style.Render(padBar(n)), price)
	}

	fmt.Fprintln(&b, headingStyle.Render("Price Comparison"))
	for _, p := range c.Points {
		b.WriteString(priceBar(p.SequenceLabel, p.Price, barStyle))
	}
	b.WriteString(priceBar("Avg. Price", c.AveragePrice, averageStyle))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Investment Distribution"))
	for _, p := range c.Points {
		fmt.Fprintf(&b, "%s %s %4s %s\n", labelStyle.Render(p.SequenceLabel), barStyle.Render(padBar(barLength(p.Share))), p.Percent(), p.Investment)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Price Trend"))
	for _, t := range c.Trend {
		style := barStyle
		if t.Label == stockavg.AverageLabel {
			style = averageStyle
		}
		b.WriteString(priceBar(t.Label, t.Price, style))
	}
	return b.String()
}

// barLength scales ratio, in [0, 1], to at most BarWidth cells. A positive
// ratio always gets at least one cell.
func barLength(ratio decimal.Decimal) int {
	n := int(ratio.Mul(decimal.NewFromInt(BarWidth)).Round(0).IntPart())
	if n == 0 && ratio.IsPositive() {
		n = 1
	}
	return min(n, BarWidth)
}

func padBar(n int) string {
	return strings.Repeat("█", n) + strings.Repeat(" ", BarWidth-n)
}
