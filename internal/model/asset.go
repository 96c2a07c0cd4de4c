package model

import "strconv"

// Asset defines a tradable crypto or fiat asset.
type Asset struct {
	// Code is the short identifier, e.g. BTC.
	Code string
	// Name is the display name, e.g. Bitcoin.
	Name string
	// Symbol is the currency symbol used when formatting values, e.g. $.
	Symbol string
	// Decimals is the number of decimal places values are rendered with.
	Decimals int
	// Crypto marks cryptocurrency assets, which render with a space after the symbol.
	Crypto bool
}

func (a Asset) String() string {
	return a.Code
}

// FormatValue renders the given value in the conventions of the asset.
// Fiat symbols prefix the value directly, crypto codes keep a space.
func (a Asset) FormatValue(v float64) string {
	prefix := a.Symbol
	if a.Crypto {
		prefix += " "
	}
	return prefix + strconv.FormatFloat(v, 'f', a.Decimals, 64)
}

// Pair defines the ordered base and quote assets a price refers to.
type Pair struct {
	Base  Asset
	Quote Asset
}

func (p Pair) String() string {
	return p.Base.Code + "/" + p.Quote.Code
}
