package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []Rule {
	return []Rule{
		{
			Name:  "top",
			Match: All(Contains("top"), Any(Contains("trade"), Contains("asset"))),
			Tool:  "top_tool",
			Args:  map[string]interface{}{"days": 90},
		},
		{
			Name:    "person",
			Match:   All(Contains("politician"), Any(Contains("stat"), Contains("trade"))),
			Tool:    "person_tool",
			Args:    map[string]interface{}{"days": 90},
			Extract: PoliticianArg("politician"),
		},
		{
			Name:  "momentum",
			Match: All(Contains("BUY"), Contains("momentum")),
			Tool:  "momentum_tool",
		},
	}
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		description string
		message     string
		rule        string
		tool        string
		args        map[string]interface{}
	}{
		{description: "first rule wins", message: "Top buy momentum assets", rule: "top", tool: "top_tool", args: map[string]interface{}{"days": 90}},
		{description: "case insensitive", message: "BUY MOMENTUM", rule: "momentum", tool: "momentum_tool", args: map[string]interface{}{}},
		{description: "extraction", message: "politician stats for Jane Doe", rule: "person", tool: "person_tool", args: map[string]interface{}{"days": 90, "politician": "Jane Doe"}},
		{description: "extraction failure stops evaluation", message: "politician trades with buy momentum", rule: "person"},
		{description: "no match", message: "hello there"},
	}

	for _, tc := range testCases {
		candidate, rule := Select(testRules(), tc.message)
		assert.EqualValues(t, tc.rule, rule, tc.description)
		if tc.tool == "" {
			assert.Nil(t, candidate, tc.description)
			continue
		}
		require.NotNil(t, candidate, tc.description)
		assert.EqualValues(t, tc.tool, candidate.Tool, tc.description)
		assert.EqualValues(t, tc.args, candidate.Args, tc.description)
	}
}

func TestSelect_DefaultArgsNotShared(t *testing.T) {
	rules := testRules()
	candidate, _ := Select(rules, "top trades")
	require.NotNil(t, candidate)
	candidate.Args["days"] = 7
	assert.EqualValues(t, 90, rules[0].Args["days"])
}

func TestPoliticianName(t *testing.T) {
	testCases := []struct {
		message string
		name    string
		ok      bool
	}{
		{message: "politician stats for Jane Doe", name: "Jane Doe", ok: true},
		{message: "show trades for politician: Nancy Pelosi", name: "Nancy Pelosi", ok: true},
		{message: "POLITICIAN:   dan crenshaw ", name: "dan crenshaw", ok: true},
		{message: "what did Ro Khanna trade", name: "Ro Khanna", ok: true},
		{message: "politician stats please", ok: false},
		{message: "", ok: false},
	}
	for _, tc := range testCases {
		name, ok := PoliticianName(tc.message)
		assert.EqualValues(t, tc.ok, ok, tc.message)
		assert.EqualValues(t, tc.name, name, tc.message)
	}
}
