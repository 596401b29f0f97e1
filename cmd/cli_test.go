package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConfigPath(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      string
	}{
		{description: "short", args: []string{"-f", "bridge.yaml", "list-tools"}, expect: "bridge.yaml"},
		{description: "long", args: []string{"--config", "s3://bucket/bridge.yaml", "serve"}, expect: "s3://bucket/bridge.yaml"},
		{description: "assignment", args: []string{"--config=bridge.yaml", "ask", "top", "trades"}, expect: "bridge.yaml"},
		{description: "sub-command flag ignored", args: []string{"exec", "-n", "get_asset_stats", "--file", "args.json"}, expect: ""},
		{description: "none", args: nil, expect: ""},
	}
	for _, tc := range testCases {
		assert.EqualValues(t, tc.expect, extractConfigPath(tc.args), tc.description)
	}
}

func TestCommandName(t *testing.T) {
	assert.EqualValues(t, "list-tools", commandName([]string{"-f", "bridge.yaml", "list-tools"}))
	assert.EqualValues(t, "serve", commandName([]string{"--config=bridge.yaml", "serve", "-l", ":8080"}))
	assert.EqualValues(t, "", commandName([]string{"-f"}))

	opts := &Options{}
	opts.Init(commandName([]string{"exec", "-n", "get_asset_stats"}))
	assert.NotNil(t, opts.Exec)
	assert.Nil(t, opts.Serve)
}
