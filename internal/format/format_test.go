package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		opts   []CurrencyOption
		want   string
	}{
		{"zero", 0, nil, "$0"},
		{"below thousand", 999, nil, "$999"},
		{"thousand", 1000, nil, "$1K"},
		{"rounds into next unit text", 999_999, nil, "$1000K"},
		{"million", 1_000_000, nil, "$1.0M"},
		{"y1 floor", 71_590_000, nil, "$71.6M"},
		{"two decimals", 71_590_000, []CurrencyOption{WithDecimals(2)}, "$71.59M"},
		{"billion", 1_000_000_000, nil, "$1.0B"},
		{"y5 ceiling", 1_389_200_000, nil, "$1.4B"},
		{"half rounds up", 1_250_000, nil, "$1.3M"},
		{"inexact half rounds down", 71_550_000, nil, "$71.5M"},
		{"inexact half million", 3_050_000, nil, "$3.0M"},
		{"inexact half billion", 1_150_000_000, nil, "$1.1B"},
		{"exact half billion", 1_250_000_000, nil, "$1.3B"},
		{"thousands drop decimals", 12_500, []CurrencyOption{WithDecimals(3)}, "$13K"},
		{"full", 1_234_567, []CurrencyOption{WithCompact(false)}, "$1,234,567"},
		{"full rounds", 999.5, []CurrencyOption{WithCompact(false)}, "$1,000"},
		{"full negative", -52_000, []CurrencyOption{WithCompact(false)}, "-$52,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount, tt.opts...))
		})
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		x        float64
		decimals int
		want     string
	}{
		{0.5, 0, "1"},
		{2.5, 0, "3"},
		{71.55, 1, "71.5"},
		{1.005, 2, "1.00"},
		{1.25, 1, "1.3"},
		{0.04, 1, "0.0"},
		{0.07, 2, "0.07"},
		{-1.25, 1, "-1.3"},
		{-0.01, 1, "0.0"},
		{12411000, 0, "12411000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed(tt.x, tt.decimals), "Fixed(%v, %d)", tt.x, tt.decimals)
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "18,786", Number(18786))
	assert.Equal(t, "721", Number(721))
	assert.Equal(t, "1,389,200,000", Number(1_389_200_000))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		current, target float64
		want            int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{50, 200, 25},
		{1, 3, 33},
		{2, 3, 67},
		{18786, 15000, 100},
		{1, 200, 1},
	}
	for _, tt := range tests {
		got := Percentage(tt.current, tt.target)
		assert.Equal(t, tt.want, got, "Percentage(%v, %v)", tt.current, tt.target)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"$71.59M", 71.59, true},
		{"13", 13, true},
		{"~40", 40, true},
		{"$1,500,000", 1_500_000, true},
		{" 2.5M annual", 2.5, true},
		{"+721", 721, true},
		{"None", 0, false},
		{"", 0, false},
		{"Website + CRM", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ExtractNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestShortCompetitorName(t *testing.T) {
	assert.Equal(t, "ERC", ShortCompetitorName("Elevate Rapid City"))
	assert.Equal(t, "BH&B", ShortCompetitorName("Black Hills & Badlands Tourism Association"))
	assert.Equal(t, "BH&B", ShortCompetitorName("BH & B"))
	assert.Equal(t, "Spe", ShortCompetitorName("Spearfish EDC"))
	assert.Equal(t, "AB", ShortCompetitorName("AB"))
}

type note struct{ metric, text string }

func (n note) MetricName() string { return n.metric }
func (n note) NoteText() string   { return n.text }

func TestExtractMultipliers(t *testing.T) {
	got := ExtractMultipliers([]note{
		{"Revenue", "17x more revenue"},
		{"Staff", ""},
		{"Entities", "4.3X broader portfolio"},
		{"Reach", "no figure here"},
	})
	assert.Equal(t, []Multiplier{
		{Value: 17, Decimals: 0, Metric: "Revenue", Note: "17x more revenue"},
		{Value: 4.3, Decimals: 1, Metric: "Entities", Note: "4.3X broader portfolio"},
	}, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Grow Campus", Truncate("Grow Campus", 12))
	assert.Equal(t, "Outpost Medi", Truncate("Outpost Medi", 12))
	assert.Equal(t, "Black Hills…", Truncate("Black Hills Consortium", 12))
	assert.Equal(t, "Pass Creek …", Truncate("Pass Creek Holdings", 12))
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Pass Creek", TitleFromSlug("pass-creek"))
	assert.Equal(t, "Bhc", TitleFromSlug("bhc"))
	assert.Equal(t, "", TitleFromSlug(""))
}

func TestCountUp(t *testing.T) {
	tests := []struct {
		value    float64
		bDec     int
		want     Display
		wantText string
	}{
		{1_760_000_000, 2, Display{End: 1.76, Prefix: "$", Suffix: "B", Decimals: 2}, "$1.76B"},
		{1_250_000_000, 1, Display{End: 1.25, Prefix: "$", Suffix: "B", Decimals: 1}, "$1.3B"},
		{60_520_000, 2, Display{End: 60.52, Prefix: "$", Suffix: "M", Decimals: 1}, "$60.5M"},
		{410_000, 1, Display{End: 410, Prefix: "$", Suffix: "K", Decimals: 0}, "$410K"},
		{49, 1, Display{End: 49, Prefix: "$", Decimals: 0}, "$49"},
	}
	for _, tt := range tests {
		got := CountUp(tt.value, tt.bDec)
		assert.InDelta(t, tt.want.End, got.End, 1e-9)
		assert.Equal(t, tt.want.Suffix, got.Suffix)
		assert.Equal(t, tt.want.Decimals, got.Decimals)
		assert.Equal(t, tt.wantText, got.String())
	}
}
