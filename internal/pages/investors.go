package pages

import (
	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

// FundColors cycle across the use-of-funds slices.
var FundColors = []string{"#22c55e", "#3b82f6", "#a855f7", "#f97316", "#6366f1"}

// ThesisItem is one point of the investment thesis grid.
type ThesisItem struct {
	Number int
	Text   string
	Wide   bool
}

// FundSlice is a use of funds with its chart color.
type FundSlice struct {
	report.FundUse
	Color      string `json:"color"`
	AmountText string `json:"amountText"`
}

// InvestorsPage is the investment opportunity.
type InvestorsPage struct {
	Meta            Meta
	CapitalRaise    string
	ValuationY1     string
	ValuationY5     string
	RevenueMultiple string
	Thesis          []ThesisItem
	Funds           []FundSlice
	Tiers           []report.InvestorTier
	InvestorEmail   string
}

// Investors builds the investor relations page.
func (b *Builder) Investors() InvestorsPage {
	inv := b.ds.Investors
	rp := inv.ReturnProjections
	raise := format.Currency(inv.CapitalRaise)

	p := InvestorsPage{
		Meta:            b.pageMeta("Investment Opportunity", "Explore the "+raise+" capital raise opportunity with the "+b.site.Organization),
		CapitalRaise:    raise,
		ValuationY1:     valuationRange(rp.ValuationY1Low, rp.ValuationY1High),
		ValuationY5:     valuationRange(rp.ValuationY5Low, rp.ValuationY5High),
		RevenueMultiple: rp.RevenueMultiple,
		Thesis:          ThesisGrid(inv.Thesis),
		Funds:           FundSlices(inv.UseOfFunds),
		Tiers:           inv.Tiers,
		InvestorEmail:   b.site.InvestorEmail,
	}
	return p
}

// ThesisGrid numbers the thesis points. With an odd count the last point
// spans both columns.
func ThesisGrid(points []string) []ThesisItem {
	items := make([]ThesisItem, len(points))
	for i, t := range points {
		items[i] = ThesisItem{
			Number: i + 1,
			Text:   t,
			Wide:   i == len(points)-1 && len(points)%2 != 0,
		}
	}
	return items
}

// FundSlices assigns each use of funds a color, cycling through FundColors.
func FundSlices(uses []report.FundUse) []FundSlice {
	out := make([]FundSlice, len(uses))
	for i, u := range uses {
		out[i] = FundSlice{FundUse: u, Color: FundColors[i%len(FundColors)], AmountText: format.Currency(u.Amount)}
	}
	return out
}
