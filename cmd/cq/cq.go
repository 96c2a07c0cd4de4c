package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seands/cryptoquote/client/binance"
	"github.com/seands/cryptoquote/client/kraken"
	"github.com/seands/cryptoquote/client/localbitcoins"
	"github.com/seands/cryptoquote/internal/api"
	"github.com/seands/cryptoquote/internal/config"
	"github.com/seands/cryptoquote/internal/model"
)

const prog = "cq"

const defaultExchange = kraken.Name

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	a := &app{
		registry:  config.MustLoadRegistry(),
		exchanges: api.NewExchanges(kraken.New(), localbitcoins.New(), binance.New()),
		formatter: model.NewFormatter(model.DetectLocale()),
		timeout:   30 * time.Second,
		out:       os.Stdout,
		err:       os.Stderr,
	}
	os.Exit(a.run(os.Args[1:]))
}

// app wires the registry, the exchange adapters and the output streams.
type app struct {
	registry  *model.Registry
	exchanges *api.Exchanges
	formatter model.Formatter
	timeout   time.Duration
	out       io.Writer
	err       io.Writer
}

// run dispatches one command line and returns the process exit code.
// All component errors are caught here and rendered as a single line.
func (a *app) run(args []string) int {
	// the level must be raised before dispatch so the run id gets logged
	if verbose(args) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cmd, err := api.ParseCommand(args)
	if err != nil {
		fmt.Fprintln(a.err, err)
		a.usage(a.err)
		return 1
	}

	log.Debug().
		Str("run", uuid.New().String()).
		Str("command", cmd.Name).
		Msg("dispatching")

	switch cmd.Name {
	case api.Help:
		a.usage(a.out)
		return 0
	case api.Price:
		return a.price(cmd.Args)
	case api.List:
		return a.list(cmd.Args)
	}
	return 1
}

// price fetches and prints a quote for a base/quote asset pair.
func (a *app) price(args []string) int {
	flags := flag.NewFlagSet("price", flag.ContinueOnError)
	flags.SetOutput(a.err)
	exchangeName := flags.String("e", defaultExchange, "exchange from which to fetch prices")
	flags.Bool("v", false, "enable verbose output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if len(rest) != 2 {
		fmt.Fprintf(a.err, "usage: %s price [-e exchange] [-v] <base> <quote>\n", prog)
		return 1
	}

	exchange, ok := a.exchanges.Lookup(*exchangeName)
	if !ok {
		fmt.Fprintf(a.err, "unknown exchange: %s\n", *exchangeName)
		return 1
	}
	pair, err := a.registry.Pair(rest[0], rest[1])
	if err != nil {
		fmt.Fprintln(a.err, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	quote, err := exchange.FetchQuote(ctx, pair)
	if err != nil {
		fmt.Fprintln(a.err, err)
		return 1
	}

	fmt.Fprintln(a.out, a.formatter.Format(*quote, exchange.Name()))
	return 0
}

// list prints the registered exchanges or assets.
func (a *app) list(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(a.err, "usage: %s list <exchanges|assets>\n", prog)
		return 1
	}

	switch strings.ToLower(args[0]) {
	case "exchanges":
		fmt.Fprintln(a.out, "Supported exchanges:")
		for _, exchange := range a.exchanges.List() {
			fmt.Fprintf(a.out, "\t%s (%s)\n", exchange.Name(), exchange.URL())
		}
	case "assets":
		fmt.Fprintln(a.out, "Supported assets:")
		for _, asset := range a.registry.List() {
			fmt.Fprintf(a.out, "\t%s (%s)\n", asset.Code, asset.Name)
		}
	default:
		fmt.Fprintf(a.err, "unknown list type: %s\n", args[0])
		return 1
	}
	return 0
}

// verbose reports whether the -v flag appears in the arguments.
func verbose(args []string) bool {
	for _, arg := range args {
		if arg == "-v" {
			return true
		}
	}
	return false
}

func (a *app) usage(w io.Writer) {
	fmt.Fprintf(w, `%s - cryptocurrency quotes on the command line

usage: %s <command> [<args>...]

commands:
  price     fetch asset price, e.g. %s price BTC USD
  quote     alias of price
  list      list exchanges or assets
  help      print this message
`, prog, prog, prog)
}
