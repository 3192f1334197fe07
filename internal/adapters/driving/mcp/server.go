// Package mcp exposes the answer service over the Model Context Protocol
// so AI assistants can query the corpus directly.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ryukaizen/marai/internal/core/ports/driving"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ErrMissingAnswerService is returned when no answer service is provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")

// Server is the MCP server for marai.
type Server struct {
	answer driving.AnswerService
	server *mcp.Server
}

// NewServer creates an MCP server over the given answer service.
func NewServer(answer driving.AnswerService) (*Server, error) {
	if answer == nil {
		return nil, ErrMissingAnswerService
	}

	impl := &mcp.Implementation{
		Name:    "marai",
		Version: Version,
	}

	s := &Server{
		answer: answer,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
