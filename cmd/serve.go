package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server that exposes the upstream tools together
// with the ask tool.  The listen address comes from the config file.
type ServeCmd struct {
	Listen string `short:"l" long:"listen" description:"listen address, overrides config"`
}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	defer svc.Close()

	addr := svc.Config().Listen
	if c.Listen != "" {
		addr = c.Listen
	}

	mcpServer, err := mcp.NewServer(svc.NewHandler, nil)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(context.Background(), addr)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	fmt.Printf("MCP server listening on %s\n", httpSrv.Addr)

	// Wait for SIGINT/SIGTERM
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	fmt.Println("shutting down")
	return httpSrv.Close()
}
