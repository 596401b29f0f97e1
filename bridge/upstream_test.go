package bridge

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tradingdata/trading-bridge/bridge/connection"
	"github.com/tradingdata/trading-bridge/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcpLogger "github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	mcpclient "github.com/viant/mcp/client"
)

type toolHandler = func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error)

func textResult(items ...string) *mcpschema.CallToolResult {
	res := &mcpschema.CallToolResult{}
	for _, text := range items {
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: text})
	}
	return res
}

// echoArguments returns the tool name and received arguments as JSON text.
func echoArguments(_ context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	data, _ := json.Marshal(map[string]interface{}{
		"tool":      req.Params.Name,
		"arguments": req.Params.Arguments,
	})
	return textResult(string(data)), nil
}

func upstreamTools() map[string]toolHandler {
	return map[string]toolHandler{
		"get_top_traded_assets":   echoArguments,
		"get_politician_stats":    echoArguments,
		"get_buy_momentum_assets": echoArguments,
		"get_party_buy_momentum":  echoArguments,
		"get_rows": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return textResult(`{"rows":3}`), nil
		},
		"get_raw": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return textResult("not json"), nil
		},
		"get_multi": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return textResult(`{"page":1}`, `{"page":2}`), nil
		},
		"get_resource": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{Type: "resource", Text: "trades.csv"}}}, nil
		},
		"get_empty": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return &mcpschema.CallToolResult{}, nil
		},
		"get_flagged": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			res := textResult("unknown politician")
			res.IsError = conv.Pointer(true)
			return res, nil
		},
		"get_failing": func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			return nil, jsonrpc.NewError(jsonrpc.InternalError, "boom", nil)
		},
	}
}

// newUpstream returns a client connected to an in-process tool server.
func newUpstream(t *testing.T) mcpclient.Interface {
	t.Helper()
	newImpl := func(ctx context.Context, notifier transport.Notifier, l mcpLogger.Logger, cli protocolclient.Operations) (protoserver.Handler, error) {
		impl := protoserver.NewDefaultHandler(notifier, l, cli)
		for name, handler := range upstreamTools() {
			impl.Registry.ToolRegistry.Put(name, &protoserver.ToolEntry{
				Metadata: mcpschema.Tool{
					Name:        name,
					Description: conv.Pointer("test tool " + name),
					InputSchema: mcpschema.ToolInputSchema{Type: "object"},
				},
				Handler: handler,
			})
		}
		return impl, nil
	}
	srv, err := mcp.NewServer(newImpl, nil)
	require.NoError(t, err)
	return srv.AsClient(context.Background())
}

// dialCounter hands out a shared upstream client and counts dial attempts.
type dialCounter struct {
	calls  int32
	client mcpclient.Interface
	err    error
}

func (d *dialCounter) dial(context.Context) (mcpclient.Interface, error) {
	atomic.AddInt32(&d.calls, 1)
	if d.err != nil {
		return nil, d.err
	}
	return d.client, nil
}

func (d *dialCounter) count() int {
	return int(atomic.LoadInt32(&d.calls))
}

var _ connection.Dialer = (&dialCounter{}).dial

func newTestService(t *testing.T, opts ...Option) (*Service, *dialCounter) {
	t.Helper()
	d := &dialCounter{client: newUpstream(t)}
	svc, err := New(append([]Option{WithDialer(d.dial)}, opts...)...)
	require.NoError(t, err)
	return svc, d
}
