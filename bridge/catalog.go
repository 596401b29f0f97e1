package bridge

import (
	"context"

	"github.com/tradingdata/trading-bridge/internal/conv"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Descriptor describes one upstream tool.
type Descriptor struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	InputSchema mcpschema.ToolInputSchema `json:"inputSchema"`
}

// ListTools returns the upstream tool catalog. Any failure is logged and
// yields an empty slice.
func (s *Service) ListTools(ctx context.Context) []Descriptor {
	tools, err := s.listTools(ctx)
	if err != nil {
		s.log.Error(err, "failed to list tools")
		return []Descriptor{}
	}
	ret := make([]Descriptor, 0, len(tools))
	for _, t := range tools {
		ret = append(ret, Descriptor{
			Name:        t.Name,
			Description: conv.Dereference(t.Description),
			InputSchema: t.InputSchema,
		})
	}
	return ret
}

// Tool returns the descriptor of the tool mapped to functionName.
func (s *Service) Tool(ctx context.Context, functionName string) (*Descriptor, bool) {
	toolName := s.resolver.Resolve(functionName)
	for _, d := range s.ListTools(ctx) {
		if d.Name == toolName {
			return &d, true
		}
	}
	return nil, false
}

func (s *Service) listTools(ctx context.Context) ([]mcpschema.Tool, error) {
	cli, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		if err != nil {
			return nil, err
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return tools, nil
}
