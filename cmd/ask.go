package cmd

import (
	"fmt"
	"strings"
)

// AskCmd runs the keyword fallback matcher over a free-text question.
type AskCmd struct {
	TimeoutSec int `long:"timeout" description:"Seconds to wait for completion" default:"120"`
}

func (c *AskCmd) Execute(args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return fmt.Errorf("question is required")
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c.TimeoutSec)
	defer cancel()
	result := svc.MatchFallback(ctx, message)
	if result == nil {
		return fmt.Errorf("no tool matched %q", message)
	}
	return printResult(result)
}
