package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/seands/cryptoquote/internal/model"
)

//go:embed assets.json
var rawAssets []byte

type assetConfig struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Decimals int      `json:"decimals"`
	Crypto   bool     `json:"crypto,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
}

// MustLoadRegistry builds the asset registry from the embedded table.
// The table ships with the binary, so a malformed table is a build defect
// and panics.
func MustLoadRegistry() *model.Registry {
	var cfg []assetConfig
	if err := json.Unmarshal(rawAssets, &cfg); err != nil {
		panic(fmt.Sprintf("could not load asset config: %s", err.Error()))
	}

	assets := make([]model.Asset, len(cfg))
	aliases := make(map[string]string)
	for i, a := range cfg {
		assets[i] = model.Asset{
			Code:     a.Code,
			Name:     a.Name,
			Symbol:   a.Symbol,
			Decimals: a.Decimals,
			Crypto:   a.Crypto,
		}
		for _, alias := range a.Aliases {
			aliases[alias] = a.Code
		}
	}

	log.Debug().Int("assets", len(assets)).Msg("loaded asset registry")

	return model.NewRegistry(assets, aliases)
}
