package connection

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/tradingdata/trading-bridge/bridge/config"
	"github.com/viant/mcp"
	mcpclient "github.com/viant/mcp/client"
)

const transportStdio = "stdio"

// Dialer spawns the tool server and completes the protocol handshake.
type Dialer func(ctx context.Context) (mcpclient.Interface, error)

// ClientOptions builds stdio client options for the configured server. The
// subprocess inherits the parent environment.
func ClientOptions(cfg *config.Config) *mcp.ClientOptions {
	command, args := cfg.Server.CommandLine()
	options := &mcp.ClientOptions{
		Name:    cfg.Name,
		Version: cfg.Version,
		Transport: mcp.ClientTransport{
			Type: transportStdio,
			ClientTransportStdio: mcp.ClientTransportStdio{
				Command:   command,
				Arguments: args,
			},
		},
	}
	options.Init()
	return options
}

// NewStdioDialer returns a Dialer launching the configured subprocess.
// mcp.NewClient spawns the process and completes the initialize handshake
// on its own; ctx bounds how long the dialer waits for it.
func NewStdioDialer(cfg *config.Config, log logr.Logger) Dialer {
	return func(ctx context.Context) (mcpclient.Interface, error) {
		options := ClientOptions(cfg)
		log.Info("starting tool server", "command", options.Transport.Command, "arguments", options.Transport.Arguments)
		done := make(chan dialed, 1)
		go func() {
			cli, err := mcp.NewClient(newHandler(log), options)
			if err != nil {
				done <- dialed{err: err}
				return
			}
			done <- dialed{client: cli}
		}()
		select {
		case <-ctx.Done():
			go abandon(done, log)
			return nil, fmt.Errorf("start %q: %w", options.Transport.Command, ctx.Err())
		case ret := <-done:
			if ret.err != nil {
				return nil, fmt.Errorf("start %q: %w", options.Transport.Command, ret.err)
			}
			log.Info("tool server handshake completed", "name", options.Name)
			return ret.client, nil
		}
	}
}

type dialed struct {
	client mcpclient.Interface
	err    error
}

// abandon waits for a handshake nobody is waiting on anymore.
func abandon(done <-chan dialed, log logr.Logger) {
	if ret := <-done; ret.err == nil {
		log.Info("tool server handshake completed after caller gave up")
	}
}
