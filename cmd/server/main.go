// geeknews-server exposes the get_articles tool to MCP clients over
// stdio. Logs go to stderr; stdout carries the protocol stream.
package main

import (
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"geeknews/internal/config"
	"geeknews/internal/logging"
	"geeknews/internal/tool"
)

const version = "1.0.0"

func main() {
	serverName := flag.String("server-name", "geeknews-server", "MCP server name")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, *debug)

	// Create the tool handler
	handler, err := tool.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create tool handler: %v", err)
	}

	// Register tools and serve over stdio
	s := server.NewMCPServer(*serverName, version, server.WithToolCapabilities(false))
	tool.RegisterTools(s, handler)

	logger.Infof("%s listening on stdio", *serverName)
	if err := server.ServeStdio(s); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}
