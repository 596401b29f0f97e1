package bridge

import (
	"context"
	"fmt"

	"github.com/tradingdata/trading-bridge/bridge/matcher"
	"github.com/tradingdata/trading-bridge/bridge/tool"
)

// Fallback rule names.
const (
	RuleTopTraded        = "top-traded"
	RulePoliticianStats  = "politician-stats"
	RuleBuyMomentum      = "buy-momentum"
	RulePartyBuyMomentum = "party-buy-momentum"
)

// Default lookback and row limits used by the fallback rules.
const (
	DefaultDays       = 90
	DefaultLimit      = 10
	DefaultPartyLimit = 5
)

// DefaultRules returns the fallback rules in priority order.
func DefaultRules() []matcher.Rule {
	return []matcher.Rule{
		{
			Name:  RuleTopTraded,
			Match: matcher.All(matcher.Contains("top"), matcher.Any(matcher.Contains("trade"), matcher.Contains("asset"))),
			Tool:  tool.TopTradedAssets.String(),
			Args:  map[string]interface{}{"days": DefaultDays, "limit": DefaultLimit},
		},
		{
			Name:    RulePoliticianStats,
			Match:   matcher.All(matcher.Contains("politician"), matcher.Any(matcher.Contains("stat"), matcher.Contains("trade"))),
			Tool:    tool.PoliticianStats.String(),
			Args:    map[string]interface{}{"days": DefaultDays},
			Extract: matcher.PoliticianArg("politician"),
		},
		{
			Name:  RuleBuyMomentum,
			Match: matcher.All(matcher.Contains("buy"), matcher.Contains("momentum")),
			Tool:  tool.BuyMomentumAssets.String(),
			Args:  map[string]interface{}{"days": DefaultDays, "limit": DefaultLimit},
		},
		{
			Name:  RulePartyBuyMomentum,
			Match: matcher.All(matcher.Contains("party"), matcher.Contains("momentum")),
			Tool:  tool.PartyBuyMomentum.String(),
			Args:  map[string]interface{}{"days": DefaultDays, "limit": DefaultPartyLimit},
		},
	}
}

// MatchFallback infers a tool call from a free-text message. It returns nil
// when no rule applies or when the chosen invocation fails; failures are
// logged, never returned.
func (s *Service) MatchFallback(ctx context.Context, message string) *Result {
	candidate, rule := matcher.Select(s.rules, message)
	if rule == "" {
		return nil
	}
	s.metrics.RecordFallback(rule)
	if candidate == nil {
		s.log.V(1).Info("fallback rule matched without required arguments", "rule", rule)
		return nil
	}
	return s.tryInvoke(ctx, candidate)
}

func (s *Service) tryInvoke(ctx context.Context, candidate *matcher.Candidate) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error(fmt.Errorf("panic: %v", r), "fallback invocation failed", "rule", candidate.Rule, "tool", candidate.Tool)
			result = nil
		}
	}()
	result = s.Invoke(ctx, candidate.Tool, candidate.Args)
	if result.Failed() {
		s.log.Info("fallback invocation failed", "rule", candidate.Rule, "tool", candidate.Tool, "error", result.Error)
		return nil
	}
	return result
}
