package format

// Display is the target state of an animated counter.
type Display struct {
	End      float64 `json:"end"`
	Prefix   string  `json:"prefix"`
	Suffix   string  `json:"suffix"`
	Decimals int     `json:"decimals"`
}

// String is the final rendered counter text.
func (d Display) String() string {
	return d.Prefix + Fixed(d.End, d.Decimals) + d.Suffix
}

// CountUp scales a dollar amount for a counter. billionDecimals applies to the
// B suffix; M uses 1 decimal and K and plain dollars use none.
func CountUp(value float64, billionDecimals int) Display {
	switch {
	case value >= billion:
		return Display{End: value / billion, Prefix: "$", Suffix: "B", Decimals: billionDecimals}
	case value >= million:
		return Display{End: value / million, Prefix: "$", Suffix: "M", Decimals: 1}
	case value >= thousand:
		return Display{End: value / thousand, Prefix: "$", Suffix: "K", Decimals: 0}
	default:
		return Display{End: value, Prefix: "$", Decimals: 0}
	}
}
