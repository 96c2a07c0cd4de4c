package kraken

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	krakenapi "github.com/beldur/kraken-go-api-client"
	"github.com/rs/zerolog/log"

	"github.com/seands/cryptoquote/internal/api"
	"github.com/seands/cryptoquote/internal/model"
)

const (
	// Name is the display name of the exchange.
	Name = "Kraken"
	// URL is the public website of the exchange.
	URL = "https://www.kraken.com/"
)

// Exchange implements the exchange api for kraken over its public REST endpoints.
type Exchange struct {
	api *krakenapi.KrakenAPI
	now func() time.Time
}

// New creates a new kraken exchange client.
// Only public endpoints are used, so no credentials are needed.
func New() *Exchange {
	return &Exchange{
		api: krakenapi.New("", ""),
		now: time.Now,
	}
}

func (e *Exchange) Name() string {
	return Name
}

func (e *Exchange) URL() string {
	return URL
}

// FetchQuote retrieves the ticker snapshot for the pair.
// Kraken returns prices as string arrays where index 0 is today and
// index 1 the last 24 hours.
func (e *Exchange) FetchQuote(ctx context.Context, pair model.Pair) (*model.Quote, error) {
	name, err := pairName(pair)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("exchange", Name).Str("pair", name).Msg("fetching ticker")

	result, err := e.api.Query("Ticker", map[string]string{"pair": name})
	if err != nil {
		return nil, classify(err, pair)
	}

	tickers, ok := result.(map[string]interface{})
	if !ok {
		return nil, &api.MalformedResponseError{Exchange: Name, Reason: "unexpected ticker payload"}
	}
	ticker, ok := tickers[name].(map[string]interface{})
	if !ok {
		return nil, &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}

	quote := &model.Quote{Pair: pair, Time: e.now()}
	for _, field := range []struct {
		key   string
		index int
		value *float64
	}{
		{key: "a", index: 0, value: &quote.Ask},
		{key: "b", index: 0, value: &quote.Bid},
		{key: "c", index: 0, value: &quote.Last},
		{key: "l", index: 0, value: &quote.TodayLow},
		{key: "l", index: 1, value: &quote.Last24Low},
		{key: "h", index: 0, value: &quote.TodayHigh},
		{key: "h", index: 1, value: &quote.Last24High},
	} {
		v, err := price(ticker, field.key, field.index)
		if err != nil {
			return nil, &api.MalformedResponseError{Exchange: Name, Reason: err.Error()}
		}
		*field.value = v
	}
	return quote, nil
}

// price extracts one value from the ticker arrays.
func price(ticker map[string]interface{}, key string, index int) (float64, error) {
	values, ok := ticker[key].([]interface{})
	if !ok || len(values) <= index {
		return 0, fmt.Errorf("missing ticker field %s[%d]", key, index)
	}
	s, ok := values[index].(string)
	if !ok {
		return 0, fmt.Errorf("unexpected ticker field %s[%d]: %v", key, index, values[index])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse ticker field %s[%d]: %w", key, index, err)
	}
	return v, nil
}

// json decode error fragments, as folded into the library's error messages.
var decodeErrors = []string{
	"invalid character",
	"unexpected end of JSON",
	"cannot unmarshal",
}

// classify maps client library failures onto the exchange error kinds.
// The library folds kraken api errors and body decode errors into the
// error message, so the unknown-pair and malformed-body cases are
// matched on the error text.
func classify(err error, pair model.Pair) error {
	msg := err.Error()
	if strings.Contains(msg, "Unknown asset pair") {
		return &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}
	for _, fragment := range decodeErrors {
		if strings.Contains(msg, fragment) {
			return &api.MalformedResponseError{Exchange: Name, Reason: msg}
		}
	}
	return &api.NetworkError{Exchange: Name, Err: err}
}
