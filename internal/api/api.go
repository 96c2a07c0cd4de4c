package api

import (
	"context"
	"strings"

	"github.com/seands/cryptoquote/internal/model"
)

// Exchange exposes the price-query capability of a trading venue.
// Each adapter performs one outbound call per FetchQuote invocation,
// with no retries.
type Exchange interface {
	// Name returns the display name of the exchange.
	Name() string
	// URL returns the public website of the exchange.
	URL() string
	// FetchQuote retrieves the current price snapshot for the pair.
	FetchQuote(ctx context.Context, pair model.Pair) (*model.Quote, error)
}

// Exchanges is the ordered set of registered exchange adapters.
type Exchanges struct {
	order []Exchange
	index map[string]Exchange
}

// NewExchanges registers the given exchanges, keeping their order for listings.
func NewExchanges(exchanges ...Exchange) *Exchanges {
	index := make(map[string]Exchange, len(exchanges))
	for _, exchange := range exchanges {
		index[strings.ToLower(exchange.Name())] = exchange
	}
	return &Exchanges{
		order: exchanges,
		index: index,
	}
}

// Lookup returns the exchange with the given name, case-insensitively.
func (e *Exchanges) Lookup(name string) (Exchange, bool) {
	exchange, ok := e.index[strings.ToLower(name)]
	return exchange, ok
}

// List returns the registered exchanges in registration order.
func (e *Exchanges) List() []Exchange {
	exchanges := make([]Exchange, len(e.order))
	copy(exchanges, e.order)
	return exchanges
}
