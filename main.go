package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	client := NewOuraClient(cfg)
	s := NewServer(client)

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	log.Printf("Starting Oura Ring MCP server on %s", addr)
	log.Printf("Connected to Oura API with token: %s...", cfg.TokenPrefix())

	// Stateless streamable HTTP: each tool call is an independent
	// request/response round trip.
	httpServer := server.NewStreamableHTTPServer(s, server.WithStateLess(true))
	if err := httpServer.Start(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
