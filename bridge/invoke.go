package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tradingdata/trading-bridge/internal/conv"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

const (
	contentText = "text"

	errorPrefix = "MCP function error: "
)

// Invoke calls the tool mapped to functionName and normalizes the response.
// It returns nil for an empty functionName without touching the upstream
// server. Failures never escape as errors: they are logged and returned as
// a Result carrying Error.
func (s *Service) Invoke(ctx context.Context, functionName string, params map[string]interface{}) (result *Result) {
	if functionName == "" {
		return nil
	}
	toolName := functionName
	defer func() {
		if r := recover(); r != nil {
			result = s.failure(functionName, toolName, fmt.Errorf("panic: %v", r))
		}
	}()

	toolName = s.resolver.Resolve(functionName)
	cli, err := s.conn.Acquire(ctx)
	if err != nil {
		return s.failure(functionName, toolName, err)
	}

	args := params
	if args == nil {
		args = map[string]interface{}{}
	}
	res, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      toolName,
		Arguments: mcpschema.CallToolRequestParamsArguments(args),
	})
	if err != nil {
		return s.failure(functionName, toolName, err)
	}
	if res == nil {
		return s.failure(functionName, toolName, errors.New("empty tool response"))
	}
	if conv.Dereference(res.IsError) {
		return s.failure(functionName, toolName, errors.New(errorText(res)))
	}

	s.metrics.RecordInvocation(toolName, false)
	if len(res.Content) > 1 {
		// Only the first item is normalized.
		s.log.V(1).Info("discarding extra content items", "tool", toolName, "items", len(res.Content))
	}
	return normalize(res)
}

func (s *Service) failure(functionName, toolName string, err error) *Result {
	s.metrics.RecordInvocation(toolName, true)
	s.log.Error(err, "tool invocation failed", "function", functionName, "tool", toolName)
	return &Result{Error: errorPrefix + err.Error()}
}

// normalize turns a protocol response into a Result. Text content is parsed
// as JSON, falling back to {"data": <raw text>}; any other content item is
// returned as is; a response without content is returned whole.
func normalize(res *mcpschema.CallToolResult) *Result {
	if len(res.Content) == 0 {
		return &Result{Data: res}
	}
	item := res.Content[0]
	if item.Type != contentText {
		return &Result{Data: item}
	}
	var data interface{}
	if err := json.Unmarshal([]byte(item.Text), &data); err != nil {
		return &Result{Data: map[string]interface{}{"data": item.Text}}
	}
	return &Result{Data: data}
}

func errorText(res *mcpschema.CallToolResult) string {
	for _, item := range res.Content {
		if item.Type == contentText && item.Text != "" {
			return item.Text
		}
	}
	return "tool reported an error"
}
