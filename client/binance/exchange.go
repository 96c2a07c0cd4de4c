package binance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/rs/zerolog/log"

	"github.com/seands/cryptoquote/internal/api"
	"github.com/seands/cryptoquote/internal/model"
)

const (
	// Name is the display name of the exchange.
	Name = "Binance"
	// URL is the public website of the exchange.
	URL = "https://www.binance.com/"
)

// unknownSymbolCode is the binance api error code for an unlisted symbol.
const unknownSymbolCode = -1121

// symbols maps asset codes to the codes binance trades with.
// Binance quotes fiat dollars through the USDT stablecoin.
var symbols = map[string]string{
	"BCH":  "BCH",
	"BTC":  "BTC",
	"DASH": "DASH",
	"DOGE": "DOGE",
	"EOS":  "EOS",
	"ETH":  "ETH",
	"EUR":  "EUR",
	"GBP":  "GBP",
	"USD":  "USDT",
}

// Exchange implements the exchange api for binance.
// The 24h statistics endpoint drives both the today and last-24h ranges,
// since binance publishes a rolling window only.
type Exchange struct {
	api *binance.Client
}

// New creates a new binance exchange client over the public api.
func New() *Exchange {
	return &Exchange{
		api: binance.NewClient("", ""),
	}
}

func (e *Exchange) Name() string {
	return Name
}

func (e *Exchange) URL() string {
	return URL
}

// FetchQuote retrieves the 24h price change statistics for the pair.
func (e *Exchange) FetchQuote(ctx context.Context, pair model.Pair) (*model.Quote, error) {
	symbol, err := symbolName(pair)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("exchange", Name).Str("symbol", symbol).Msg("fetching ticker")

	stats, err := e.api.NewListPriceChangeStatsService().Symbol(symbol).Do(ctx)
	if err != nil {
		return nil, classify(err, pair)
	}
	if len(stats) == 0 {
		return nil, &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}

	quote := &model.Quote{Pair: pair, Time: time.UnixMilli(stats[0].CloseTime)}
	for _, field := range []struct {
		name  string
		raw   string
		value *float64
	}{
		{name: "askPrice", raw: stats[0].AskPrice, value: &quote.Ask},
		{name: "bidPrice", raw: stats[0].BidPrice, value: &quote.Bid},
		{name: "lastPrice", raw: stats[0].LastPrice, value: &quote.Last},
		{name: "lowPrice", raw: stats[0].LowPrice, value: &quote.TodayLow},
		{name: "lowPrice", raw: stats[0].LowPrice, value: &quote.Last24Low},
		{name: "highPrice", raw: stats[0].HighPrice, value: &quote.TodayHigh},
		{name: "highPrice", raw: stats[0].HighPrice, value: &quote.Last24High},
	} {
		v, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return nil, &api.MalformedResponseError{
				Exchange: Name,
				Reason:   fmt.Sprintf("could not parse %s %q", field.name, field.raw),
			}
		}
		*field.value = v
	}
	return quote, nil
}

// symbolName converts the pair to the symbol binance keys its tickers with.
func symbolName(pair model.Pair) (string, error) {
	base, ok := symbols[pair.Base.Code]
	if !ok {
		return "", &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}
	quote, ok := symbols[pair.Quote.Code]
	if !ok {
		return "", &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}
	return base + quote, nil
}

// classify maps client library failures onto the exchange error kinds.
// Api error replies other than the unknown-symbol case cannot be turned
// into a quote either, so they surface as malformed responses carrying
// the upstream code.
func classify(err error, pair model.Pair) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == unknownSymbolCode {
			return &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
		}
		return &api.MalformedResponseError{
			Exchange: Name,
			Reason:   fmt.Sprintf("api error %d: %s", apiErr.Code, apiErr.Message),
		}
	}
	return &api.NetworkError{Exchange: Name, Err: err}
}
