package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	stripChars   = regexp.MustCompile(`[$,~+]`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	multiplierRe = regexp.MustCompile(`(?i)(\d+\.?\d*)x`)
	elevateRe    = regexp.MustCompile(`(?i)elevate`)
	badlandsRe   = regexp.MustCompile(`(?i)badlands|bh ?& ?b`)
)

// Percentage returns current as a share of target, rounded and capped at 100.
// A zero target yields 0.
func Percentage(current, target float64) int {
	if target == 0 {
		return 0
	}
	return int(math.Min(Round(current/target*100), 100))
}

// Round rounds halves toward positive infinity.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// ExtractNumber parses the leading number of a display value such as
// "$71.59M" or "~40". ok is false when no number is present.
func ExtractNumber(s string) (float64, bool) {
	cleaned := strings.TrimSpace(stripChars.ReplaceAllString(s, ""))
	m := leadingFloat.FindString(cleaned)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ShortCompetitorName abbreviates a competitor for chart labels.
func ShortCompetitorName(name string) string {
	switch {
	case elevateRe.MatchString(name):
		return "ERC"
	case badlandsRe.MatchString(name):
		return "BH&B"
	}
	return truncateRunes(name, 3)
}

// Multiplier is an "Nx" figure pulled from a comparison note.
type Multiplier struct {
	Value    float64
	Decimals int
	Metric   string
	Note     string
}

// NoteSource is anything with a metric name and an explanatory note.
type NoteSource interface {
	MetricName() string
	NoteText() string
}

// ExtractMultipliers returns the first "Nx" figure of each note, in order.
func ExtractMultipliers[T NoteSource](points []T) []Multiplier {
	var out []Multiplier
	for _, p := range points {
		note := p.NoteText()
		m := multiplierRe.FindStringSubmatch(note)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		decimals := 0
		if _, frac, ok := strings.Cut(m[1], "."); ok {
			decimals = len(frac)
		}
		out = append(out, Multiplier{Value: v, Decimals: decimals, Metric: p.MetricName(), Note: note})
	}
	return out
}

// Truncate shortens names longer than max runes to max-1 runes plus an
// ellipsis.
func Truncate(name string, max int) string {
	if utf8.RuneCountInString(name) <= max {
		return name
	}
	return truncateRunes(name, max-1) + "…"
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// TitleFromSlug turns "pass-creek" into "Pass Creek".
func TitleFromSlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = strings.ToUpper(string(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}
