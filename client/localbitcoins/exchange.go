package localbitcoins

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seands/cryptoquote/internal/api"
	"github.com/seands/cryptoquote/internal/model"
)

const (
	// Name is the display name of the exchange.
	Name = "LocalBitcoins"
	// URL is the public website of the exchange.
	URL = "https://localbitcoins.com/"

	tickerURL = "https://localbitcoins.com/bitcoinaverage/ticker-all-currencies/"
)

// ticker is one currency entry of the all-currencies ticker document.
type ticker struct {
	Rates struct {
		Last string `json:"last"`
	} `json:"rates"`
}

// Exchange implements the exchange api for localbitcoins.
// The venue trades bitcoin only and publishes last prices per fiat
// currency, so quotes carry the last price alone.
type Exchange struct {
	client *http.Client
	url    string
	now    func() time.Time
}

// New creates a new localbitcoins exchange client.
func New() *Exchange {
	return &Exchange{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    tickerURL,
		now:    time.Now,
	}
}

func (e *Exchange) Name() string {
	return Name
}

func (e *Exchange) URL() string {
	return URL
}

// FetchQuote retrieves the last traded price for the pair.
// Only BTC base pairs are supported.
func (e *Exchange) FetchQuote(ctx context.Context, pair model.Pair) (*model.Quote, error) {
	if pair.Base.Code != "BTC" {
		return nil, &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}

	log.Debug().Str("exchange", Name).Str("pair", pair.String()).Msg("fetching ticker")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return nil, &api.NetworkError{Exchange: Name, Err: err}
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &api.NetworkError{Exchange: Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &api.MalformedResponseError{
			Exchange: Name,
			Reason:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var tickers map[string]ticker
	if err := json.NewDecoder(resp.Body).Decode(&tickers); err != nil {
		return nil, &api.MalformedResponseError{Exchange: Name, Reason: err.Error()}
	}

	t, ok := tickers[pair.Quote.Code]
	if !ok {
		return nil, &api.UnsupportedPairError{Exchange: Name, Pair: pair.String()}
	}
	last, err := strconv.ParseFloat(t.Rates.Last, 64)
	if err != nil {
		return nil, &api.MalformedResponseError{
			Exchange: Name,
			Reason:   fmt.Sprintf("could not parse last price %q", t.Rates.Last),
		}
	}

	return &model.Quote{Pair: pair, Last: last, Time: e.now()}, nil
}
