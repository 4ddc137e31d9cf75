// Package format renders report numbers for display.
package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	thousand = 1_000
	million  = 1_000_000
	billion  = 1_000_000_000
)

type currencyOptions struct {
	compact  bool
	decimals int
}

// CurrencyOption configures Currency.
type CurrencyOption func(*currencyOptions)

// WithDecimals sets the decimals used for the M and B suffixes.
func WithDecimals(n int) CurrencyOption {
	return func(o *currencyOptions) { o.decimals = n }
}

// WithCompact toggles suffix notation. Non-compact output is full en-US
// currency with no fraction.
func WithCompact(compact bool) CurrencyOption {
	return func(o *currencyOptions) { o.compact = compact }
}

// Currency formats a dollar amount. By default it is compact: $71.6M, $1.4B,
// $950K, $420.
func Currency(amount float64, opts ...CurrencyOption) string {
	o := currencyOptions{compact: true, decimals: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.compact {
		digits := Fixed(amount, 0)
		neg := strings.HasPrefix(digits, "-")
		n, _ := strconv.ParseInt(strings.TrimPrefix(digits, "-"), 10, 64)
		s := printer().Sprintf("%d", n)
		if neg {
			return "-$" + s
		}
		return "$" + s
	}

	switch {
	case amount >= billion:
		return "$" + Fixed(amount/billion, o.decimals) + "B"
	case amount >= million:
		return "$" + Fixed(amount/million, o.decimals) + "M"
	case amount >= thousand:
		return "$" + Fixed(amount/thousand, 0) + "K"
	default:
		return "$" + Fixed(amount, 0)
	}
}

// Number formats n with en-US digit grouping.
func Number(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return printer().Sprintf("%d", int64(n))
	}
	return printer().Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}

// Fixed renders x with exactly decimals fraction digits. It rounds the exact
// binary value of x, so 71.55 (stored as 71.5499...) gives "71.5", and only
// true halves round away from zero.
func Fixed(x float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}

	const prec = 2048
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	v := new(big.Float).SetPrec(prec).SetFloat64(math.Abs(x))
	v.Mul(v, new(big.Float).SetPrec(prec).SetInt(scale))
	v.Add(v, big.NewFloat(0.5))
	n, _ := v.Int(nil)

	s := n.String()
	if decimals > 0 {
		if len(s) <= decimals {
			s = strings.Repeat("0", decimals-len(s)+1) + s
		}
		s = s[:len(s)-decimals] + "." + s[len(s)-decimals:]
	}
	if x < 0 && n.Sign() != 0 {
		s = "-" + s
	}
	return s
}

func printer() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}
