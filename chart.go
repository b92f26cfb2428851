package stockavg

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AverageLabel names the synthetic last point of the price trend.
const AverageLabel = "Average"

// ChartPoint is one purchase as drawn by the chart views.
type ChartPoint struct {
	SequenceLabel string // "Purchase 1"
	Price         Money
	Quantity      Quantity
	Investment    Money
	Share         decimal.Decimal // part of the total investment, in [0, 1]
}

// Percent returns the share as a whole percentage, "69%".
func (p ChartPoint) Percent() string {
	return p.Share.Shift(2).Round(0).String() + "%"
}

// TrendPoint is a point of the price trend line.
type TrendPoint struct {
	Label string
	Price Money
}

// Charts holds the series of the three chart views: price comparison (Points
// against AveragePrice), investment distribution (Points shares) and price
// trend (Trend).
type Charts struct {
	Label        string
	AveragePrice Money
	Points       []ChartPoint
	Trend        []TrendPoint // purchases in order, then the average
}

// NewCharts shapes the snapshot s and the result r computed from it.
func NewCharts(s Snapshot, r *Result) *Charts {
	c := &Charts{
		Label:        strings.TrimSpace(s.Label),
		AveragePrice: r.AveragePrice,
		Points:       make([]ChartPoint, 0, len(s.Entries)),
		Trend:        make([]TrendPoint, 0, len(s.Entries)+1),
	}
	for i, e := range s.Entries {
		investment := e.Investment()
		if i < len(r.PerEntryInvestment) {
			investment = r.PerEntryInvestment[i]
		}
		var share decimal.Decimal
		if r.TotalInvestment.IsPositive() {
			share = investment.Ratio(r.TotalInvestment)
		}
		label := fmt.Sprintf("Purchase %d", i+1)
		c.Points = append(c.Points, ChartPoint{
			SequenceLabel: label,
			Price:         e.Price,
			Quantity:      e.Quantity,
			Investment:    investment,
			Share:         share,
		})
		c.Trend = append(c.Trend, TrendPoint{Label: label, Price: e.Price})
	}
	c.Trend = append(c.Trend, TrendPoint{Label: AverageLabel, Price: r.AveragePrice})
	return c
}

// MarshalJSON writes the series for an external chart library. Amounts are
// written both raw and as rounded labels so tooltips match the reports.
func (c *Charts) MarshalJSON() ([]byte, error) {
	type point struct {
		SequenceLabel   string          `json:"sequenceLabel"`
		Price           decimal.Decimal `json:"price"`
		PriceLabel      string          `json:"priceLabel"`
		Quantity        Quantity        `json:"quantity"`
		Investment      decimal.Decimal `json:"investment"`
		InvestmentLabel string          `json:"investmentLabel"`
		Percent         string          `json:"percent"`
	}
	type trend struct {
		Name       string          `json:"name"`
		Price      decimal.Decimal `json:"price"`
		PriceLabel string          `json:"priceLabel"`
	}
	points := make([]point, len(c.Points))
	for i, p := range c.Points {
		points[i] = point{
			SequenceLabel:   p.SequenceLabel,
			Price:           p.Price.Decimal(),
			PriceLabel:      p.Price.String(),
			Quantity:        p.Quantity,
			Investment:      p.Investment.Decimal(),
			InvestmentLabel: p.Investment.String(),
			Percent:         p.Percent(),
		}
	}
	trends := make([]trend, len(c.Trend))
	for i, t := range c.Trend {
		trends[i] = trend{Name: t.Label, Price: t.Price.Decimal(), PriceLabel: t.Price.String()}
	}

	return json.Marshal(struct {
		Label             string          `json:"label,omitempty"`
		AveragePrice      decimal.Decimal `json:"averagePrice"`
		AveragePriceLabel string          `json:"averagePriceLabel"`
		Points            []point         `json:"points"`
		Trend             []trend         `json:"trend"`
	}{c.Label, c.AveragePrice.Decimal(), c.AveragePrice.String(), points, trends})
}
