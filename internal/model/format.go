package model

import (
	"fmt"
	"os"
	"strings"

	"github.com/ncruces/go-strftime"
)

// Locale carries the strftime pattern used to render quote timestamps.
type Locale struct {
	Name     string
	DateTime string
}

// known locales with their date and time conventions, day-first outside the US.
var locales = map[string]Locale{
	"en_GB": {Name: "en_GB", DateTime: "%d/%m/%y %H:%M:%S"},
	"en_US": {Name: "en_US", DateTime: "%m/%d/%y %H:%M:%S"},
	"de_DE": {Name: "de_DE", DateTime: "%d.%m.%y %H:%M:%S"},
	"fr_FR": {Name: "fr_FR", DateTime: "%d/%m/%y %H:%M:%S"},
	"ja_JP": {Name: "ja_JP", DateTime: "%y/%m/%d %H:%M:%S"},
}

var defaultLocale = locales["en_GB"]

// DetectLocale resolves the active locale from the standard environment
// variables, falling back to day-first formatting.
func DetectLocale() Locale {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		name := strings.SplitN(value, ".", 2)[0]
		if locale, ok := locales[name]; ok {
			return locale
		}
	}
	return defaultLocale
}

// Formatter renders quotes into the fixed terminal layout.
type Formatter struct {
	locale Locale
}

// NewFormatter creates a formatter for the given locale.
func NewFormatter(locale Locale) Formatter {
	return Formatter{locale: locale}
}

// Format renders the quote as a text block.
// Lines whose prices the exchange did not provide are omitted.
func (f Formatter) Format(q Quote, exchange string) string {
	quote := q.Pair.Quote
	lines := []string{fmt.Sprintf("%s price on %s as of %s:",
		q.Pair.Base.Code, exchange, strftime.Format(f.locale.DateTime, q.Time))}
	if q.Ask > 0 {
		lines = append(lines, fmt.Sprintf("\tAsk: %s", quote.FormatValue(q.Ask)))
	}
	if q.Bid > 0 {
		lines = append(lines, fmt.Sprintf("\tBid: %s", quote.FormatValue(q.Bid)))
	}
	if q.Last > 0 {
		lines = append(lines, fmt.Sprintf("\tLast: %s", quote.FormatValue(q.Last)))
	}
	if q.TodayLow > 0 {
		line := fmt.Sprintf("\tToday low: %s", quote.FormatValue(q.TodayLow))
		if q.Last24Low > 0 {
			line += fmt.Sprintf(" (last 24h: %s)", quote.FormatValue(q.Last24Low))
		}
		lines = append(lines, line)
	}
	if q.TodayHigh > 0 {
		line := fmt.Sprintf("\tToday high: %s", quote.FormatValue(q.TodayHigh))
		if q.Last24High > 0 {
			line += fmt.Sprintf(" (last 24h: %s)", quote.FormatValue(q.Last24High))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
