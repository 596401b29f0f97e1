package bridge

import (
	"context"
	"encoding/json"

	"github.com/tradingdata/trading-bridge/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// AskTool is the name of the tool exposing MatchFallback.
const AskTool = "ask"

// NewHandler returns an MCP server handler re-exposing the bridge: one
// proxied tool per upstream tool plus AskTool. The upstream catalog is
// read when the handler is created.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, entry := range s.toolEntries(ctx) {
		impl.Registry.ToolRegistry.Put(entry.Metadata.Name, entry)
	}
	return impl, nil
}

func (s *Service) toolEntries(ctx context.Context) []*serverproto.ToolEntry {
	descriptors := s.ListTools(ctx)
	ret := make([]*serverproto.ToolEntry, 0, len(descriptors)+1)
	for _, d := range descriptors {
		name := d.Name
		ret = append(ret, &serverproto.ToolEntry{
			Metadata: mcpschema.Tool{
				Name:        name,
				Description: conv.Pointer(d.Description),
				InputSchema: d.InputSchema,
			},
			Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
				return callToolResult(s.Invoke(ctx, name, request.Params.Arguments)), nil
			},
		})
	}
	ret = append(ret, &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        AskTool,
			Description: conv.Pointer("Answer a free-text trading data question with the best matching tool"),
			InputSchema: mcpschema.ToolInputSchema{
				Type: "object",
				Properties: map[string]map[string]interface{}{
					"message": {"type": "string", "description": "question in natural language"},
				},
				Required: []string{"message"},
			},
		},
		Handler: func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			message, _ := request.Params.Arguments["message"].(string)
			return callToolResult(s.MatchFallback(ctx, message)), nil
		},
	})
	return ret
}

// callToolResult renders a Result as a single JSON text item.
func callToolResult(result *Result) *mcpschema.CallToolResult {
	data, err := json.Marshal(result)
	if err != nil {
		data, _ = json.Marshal(&Result{Error: errorPrefix + err.Error()})
	}
	res := &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
		Type: contentText,
		Text: string(data),
	}}}
	if result.Failed() {
		res.IsError = conv.Pointer(true)
	}
	return res
}
