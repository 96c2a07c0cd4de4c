package kraken

import (
	"github.com/seands/cryptoquote/internal/api"
	"github.com/seands/cryptoquote/internal/model"
)

// symbol carries the codes kraken uses for an asset.
// Legacy listings keep the X/Z prefixed canonical code next to the altname.
type symbol struct {
	canonical string
	alt       string
	prefixed  bool
}

var symbols = map[string]symbol{
	"BCH":  {canonical: "BCH", alt: "BCH"},
	"BTC":  {canonical: "XXBT", alt: "XBT", prefixed: true},
	"DASH": {canonical: "DASH", alt: "DASH"},
	"DOGE": {canonical: "XXDG", alt: "XDG"},
	"EOS":  {canonical: "EOS", alt: "EOS"},
	"ETH":  {canonical: "XETH", alt: "ETH", prefixed: true},
	"GNO":  {canonical: "GNO", alt: "GNO"},
	"EUR":  {canonical: "ZEUR", alt: "EUR", prefixed: true},
	"GBP":  {canonical: "ZGBP", alt: "GBP", prefixed: true},
	"JPY":  {canonical: "ZJPY", alt: "JPY", prefixed: true},
	"USD":  {canonical: "ZUSD", alt: "USD", prefixed: true},
}

// pairName returns the name kraken keys the ticker result with.
// Pairs of legacy assets combine the prefixed codes (XXBTZUSD), pairs
// involving newer listings combine the altnames (BCHUSD).
func pairName(pair model.Pair) (string, error) {
	base, ok := symbols[pair.Base.Code]
	if !ok {
		return "", &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}
	quote, ok := symbols[pair.Quote.Code]
	if !ok {
		return "", &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}
	if base.prefixed && quote.prefixed {
		return base.canonical + quote.canonical, nil
	}
	return base.alt + quote.alt, nil
}
