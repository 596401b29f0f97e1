package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tradingdata/trading-bridge/bridge"
	"github.com/tradingdata/trading-bridge/bridge/matcher"
	"github.com/tradingdata/trading-bridge/bridge/tool"
)

// ListToolsCmd prints every upstream tool with its description, or the known
// function names with the tools they resolve to.
type ListToolsCmd struct {
	Pattern   string `short:"p" long:"pattern" description:"only names matching the pattern (* or prefix)" default:"*"`
	Functions bool   `long:"functions" description:"list known function names and their tools instead of querying the server"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	if c.Functions {
		writeFunctions(os.Stdout, svc.Resolver(), c.Pattern)
		return nil
	}
	writeTools(os.Stdout, svc.ListTools(context.Background()), c.Pattern)
	return nil
}

func writeTools(w io.Writer, tools []bridge.Descriptor, pattern string) {
	// Sorting for deterministic output (helpful for tests & scripting).
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	for _, t := range tools {
		if !matcher.Match(pattern, t.Name) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
	}
}

func writeFunctions(w io.Writer, resolver *tool.Resolver, pattern string) {
	for _, name := range resolver.Functions() {
		if !matcher.Match(pattern, name) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", name, resolver.Resolve(name))
	}
}
