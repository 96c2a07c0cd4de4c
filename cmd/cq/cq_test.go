package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seands/cryptoquote/internal/api"
	"github.com/seands/cryptoquote/internal/config"
	"github.com/seands/cryptoquote/internal/model"
)

type stubExchange struct {
	name  string
	url   string
	quote *model.Quote
	err   error
}

func (s *stubExchange) Name() string {
	return s.name
}

func (s *stubExchange) URL() string {
	return s.url
}

func (s *stubExchange) FetchQuote(_ context.Context, pair model.Pair) (*model.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	quote := *s.quote
	quote.Pair = pair
	return &quote, nil
}

func newTestApp(exchanges ...api.Exchange) (*app, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	a := &app{
		registry:  config.MustLoadRegistry(),
		exchanges: api.NewExchanges(exchanges...),
		formatter: model.NewFormatter(model.Locale{Name: "en_GB", DateTime: "%d/%m/%y %H:%M:%S"}),
		timeout:   time.Second,
		out:       out,
		err:       errOut,
	}
	return a, out, errOut
}

func krakenStub() *stubExchange {
	return &stubExchange{
		name: "Kraken",
		url:  "https://www.kraken.com/",
		quote: &model.Quote{
			Ask:        5607.50,
			Bid:        5606.30,
			Last:       5604.90,
			TodayLow:   5550.00,
			TodayHigh:  5708.10,
			Last24Low:  5462.10,
			Last24High: 5731.28,
			Time:       time.Date(2017, 10, 16, 10, 41, 56, 0, time.UTC),
		},
	}
}

func TestPrice(t *testing.T) {
	a, out, errOut := newTestApp(krakenStub())

	code := a.run([]string{"price", "BTC", "USD"})

	require.Equal(t, 0, code)
	assert.Empty(t, errOut.String())
	assert.Equal(t, "BTC price on Kraken as of 16/10/17 10:41:56:\n"+
		"\tAsk: $5607.50\n"+
		"\tBid: $5606.30\n"+
		"\tLast: $5604.90\n"+
		"\tToday low: $5550.00 (last 24h: $5462.10)\n"+
		"\tToday high: $5708.10 (last 24h: $5731.28)\n", out.String())
}

func TestQuoteAlias(t *testing.T) {
	a, out, _ := newTestApp(krakenStub())

	code := a.run([]string{"quote", "BTC", "USD"})

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "BTC price on Kraken")
}

func TestPriceUnknownAsset(t *testing.T) {
	a, out, errOut := newTestApp(krakenStub())

	code := a.run([]string{"price", "WTF", "USD"})

	require.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Equal(t, "unknown asset: WTF\n", errOut.String())
}

func TestPriceUnknownExchange(t *testing.T) {
	a, _, errOut := newTestApp(krakenStub())

	code := a.run([]string{"price", "-e", "mtgox", "BTC", "USD"})

	require.Equal(t, 1, code)
	assert.Equal(t, "unknown exchange: mtgox\n", errOut.String())
}

func TestPriceNetworkFailure(t *testing.T) {
	stub := krakenStub()
	stub.err = &api.NetworkError{Exchange: "Kraken", Err: errors.New("dial tcp: i/o timeout")}
	a, out, errOut := newTestApp(stub)

	code := a.run([]string{"price", "BTC", "USD"})

	require.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Equal(t, "could not reach Kraken: dial tcp: i/o timeout\n", errOut.String())
}

func TestPriceUnsupportedPair(t *testing.T) {
	stub := krakenStub()
	stub.err = &api.UnsupportedPairError{Exchange: "Kraken", Pair: "GNO/JPY"}
	a, _, errOut := newTestApp(stub)

	code := a.run([]string{"price", "GNO", "JPY"})

	require.Equal(t, 1, code)
	assert.Equal(t, "pair GNO/JPY is not available on Kraken\n", errOut.String())
}

func TestPriceMissingArgs(t *testing.T) {
	a, _, errOut := newTestApp(krakenStub())

	code := a.run([]string{"price", "BTC"})

	require.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "usage: cq price")
}

func TestListExchanges(t *testing.T) {
	a, out, _ := newTestApp(
		krakenStub(),
		&stubExchange{name: "LocalBitcoins", url: "https://localbitcoins.com/"},
	)

	code := a.run([]string{"list", "exchanges"})

	require.Equal(t, 0, code)
	assert.Equal(t, "Supported exchanges:\n"+
		"\tKraken (https://www.kraken.com/)\n"+
		"\tLocalBitcoins (https://localbitcoins.com/)\n", out.String())
}

func TestListAssetsStable(t *testing.T) {
	a, out, _ := newTestApp(krakenStub())

	require.Equal(t, 0, a.run([]string{"list", "assets"}))
	first := out.String()
	out.Reset()
	require.Equal(t, 0, a.run([]string{"list", "assets"}))

	assert.Equal(t, first, out.String())
	assert.Contains(t, first, "\tBTC (Bitcoin)\n")
	assert.Contains(t, first, "\tUSD (US Dollar)\n")
}

func TestListUnknownType(t *testing.T) {
	a, _, errOut := newTestApp(krakenStub())

	code := a.run([]string{"list", "wallets"})

	require.Equal(t, 1, code)
	assert.Equal(t, "unknown list type: wallets\n", errOut.String())
}

func TestUnknownCommand(t *testing.T) {
	a, out, errOut := newTestApp(krakenStub())

	code := a.run([]string{"frobnicate"})

	require.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "unknown command: frobnicate")
}

func TestNoCommand(t *testing.T) {
	a, _, errOut := newTestApp(krakenStub())

	code := a.run([]string{})

	require.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "no command specified")
}

func TestVerboseLogsRunID(t *testing.T) {
	logs := &bytes.Buffer{}
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(logs)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	a, _, _ := newTestApp(krakenStub())

	require.Equal(t, 0, a.run([]string{"price", "BTC", "USD"}))
	assert.Empty(t, logs.String())

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	require.Equal(t, 0, a.run([]string{"price", "-v", "BTC", "USD"}))
	assert.Contains(t, logs.String(), "dispatching")
	assert.Contains(t, logs.String(), `"run":`)
}

func TestHelp(t *testing.T) {
	a, out, errOut := newTestApp(krakenStub())

	code := a.run([]string{"help"})

	require.Equal(t, 0, code)
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "usage: cq <command>")
}
