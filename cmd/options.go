package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"bridge configuration YAML path or URL"`

	ListTools *ListToolsCmd `command:"list-tools" description:"List tools exposed by the trading data server"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Invoke a tool and print the normalized result"`
	Ask       *AskCmd       `command:"ask"        description:"Answer a free-text question with the keyword fallback"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server re-exposing the bridge"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "ask":
		o.Ask = &AskCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
