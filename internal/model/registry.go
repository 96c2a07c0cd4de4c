package model

import (
	"fmt"
	"strings"
)

// UnknownAssetError signals an identifier missing from the asset registry.
type UnknownAssetError struct {
	Asset string
}

func (e *UnknownAssetError) Error() string {
	return fmt.Sprintf("unknown asset: %s", e.Asset)
}

// Registry is the static asset table.
// It is built once at startup and read-only afterwards.
type Registry struct {
	assets []Asset
	index  map[string]Asset
}

// NewRegistry builds a registry from the given assets, keeping their order for listings.
// aliases map alternative spellings (e.g. XBT) to canonical codes.
func NewRegistry(assets []Asset, aliases map[string]string) *Registry {
	index := make(map[string]Asset, len(assets)+len(aliases))
	for _, asset := range assets {
		index[strings.ToUpper(asset.Code)] = asset
	}
	for alias, code := range aliases {
		if asset, ok := index[strings.ToUpper(code)]; ok {
			index[strings.ToUpper(alias)] = asset
		}
	}
	return &Registry{
		assets: assets,
		index:  index,
	}
}

// Resolve returns the asset for the given identifier.
// Lookup is case-insensitive on the short code and its aliases.
func (r *Registry) Resolve(id string) (Asset, error) {
	if asset, ok := r.index[strings.ToUpper(id)]; ok {
		return asset, nil
	}
	return Asset{}, &UnknownAssetError{Asset: id}
}

// Pair resolves both identifiers into an ordered asset pair.
func (r *Registry) Pair(base, quote string) (Pair, error) {
	b, err := r.Resolve(base)
	if err != nil {
		return Pair{}, err
	}
	q, err := r.Resolve(quote)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Base: b, Quote: q}, nil
}

// List returns all registered assets in registry order.
func (r *Registry) List() []Asset {
	assets := make([]Asset, len(r.assets))
	copy(assets, r.assets)
	return assets
}
