package connection

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/viant/jsonrpc"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// handler answers server-initiated requests on the bridge side of the
// connection. The bridge offers no client capabilities, so every request
// is rejected with MethodNotFound and notifications are only logged.
type handler struct {
	log logr.Logger
}

func (h *handler) Init(_ context.Context, _ *mcpschema.ClientCapabilities) {}

func (h *handler) OnNotification(_ context.Context, notification *jsonrpc.Notification) {
	if notification == nil {
		return
	}
	h.log.V(1).Info("tool server notification", "method", notification.Method)
}

func (h *handler) Implements(string) bool { return false }

func (*handler) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}
func (*handler) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}
func (*handler) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}
func (*handler) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func newHandler(log logr.Logger) protoclient.Handler { return &handler{log: log} }
