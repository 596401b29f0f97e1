package matcher

import (
	"strings"

	"github.com/tradingdata/trading-bridge/internal/conv"
)

// Predicate tests a lower-cased message.
type Predicate func(lower string) bool

// Contains matches messages containing word.
func Contains(word string) Predicate {
	word = strings.ToLower(word)
	return func(lower string) bool {
		return strings.Contains(lower, word)
	}
}

// All matches when every predicate matches.
func All(predicates ...Predicate) Predicate {
	return func(lower string) bool {
		for _, p := range predicates {
			if !p(lower) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches.
func Any(predicates ...Predicate) Predicate {
	return func(lower string) bool {
		for _, p := range predicates {
			if p(lower) {
				return true
			}
		}
		return false
	}
}

// Extractor derives extra arguments from the original message. It returns
// false when the required values are missing.
type Extractor func(message string) (map[string]interface{}, bool)

// Rule selects Tool with default Args when Match accepts the message.
type Rule struct {
	Name    string
	Match   Predicate
	Tool    string
	Args    map[string]interface{}
	Extract Extractor
}

// Candidate is a tool call chosen by a rule.
type Candidate struct {
	Rule string
	Tool string
	Args map[string]interface{}
}

// Select evaluates rules in order against message. The first rule whose
// predicate matches decides the outcome: matched names it, and candidate is
// nil when its extractor fails. Later rules are never consulted once one
// matched.
func Select(rules []Rule, message string) (candidate *Candidate, matched string) {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		if rule.Match == nil || !rule.Match(lower) {
			continue
		}
		args := conv.CloneMap(rule.Args)
		if rule.Extract != nil {
			extra, ok := rule.Extract(message)
			if !ok {
				return nil, rule.Name
			}
			for k, v := range extra {
				args[k] = v
			}
		}
		return &Candidate{Rule: rule.Name, Tool: rule.Tool, Args: args}, rule.Name
	}
	return nil, ""
}
