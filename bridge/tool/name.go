package tool

import (
	"sort"

	"github.com/tradingdata/trading-bridge/internal/syncmap"
)

// Name represents an application-level function identifier.
type Name string

// Known function identifiers.
const (
	TopTradedAssets   Name = "get_top_traded_assets"
	PoliticianStats   Name = "get_politician_stats"
	AssetStats        Name = "get_asset_stats"
	BuyMomentumAssets Name = "get_buy_momentum_assets"
	PartyBuyMomentum  Name = "get_party_buy_momentum"
	PoliticianTrades  Name = "get_politician_trades"
)

func (n Name) String() string {
	return string(n)
}

// builtinNames lists the static function -> tool mapping.
var builtinNames = map[Name]string{
	TopTradedAssets:   "get_top_traded_assets",
	PoliticianStats:   "get_politician_stats",
	AssetStats:        "get_asset_stats",
	BuyMomentumAssets: "get_buy_momentum_assets",
	PartyBuyMomentum:  "get_party_buy_momentum",
	PoliticianTrades:  "get_politician_trades",
}

// Resolver translates function identifiers into protocol tool names.
type Resolver struct {
	names *syncmap.Map[string]
}

// NewResolver creates a resolver seeded with the builtin mapping. Aliases
// override or extend it; empty keys and values are ignored.
func NewResolver(aliases map[string]string) *Resolver {
	ret := &Resolver{names: syncmap.NewRegistry[string]()}
	for name, toolName := range builtinNames {
		ret.names.Set(string(name), toolName)
	}
	for name, toolName := range aliases {
		ret.Alias(name, toolName)
	}
	return ret
}

// Alias registers or replaces a mapping.
func (r *Resolver) Alias(functionName, toolName string) {
	if functionName == "" || toolName == "" {
		return
	}
	r.names.Set(functionName, toolName)
}

// Resolve returns the tool name for functionName, or functionName itself
// when no mapping exists.
func (r *Resolver) Resolve(functionName string) string {
	if toolName, ok := r.names.Lookup(functionName); ok {
		return toolName
	}
	return functionName
}

// Functions returns all mapped function identifiers in sorted order.
func (r *Resolver) Functions() []string {
	ret := r.names.Keys()
	sort.Strings(ret)
	return ret
}
