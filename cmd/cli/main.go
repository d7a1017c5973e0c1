// geeknews-cli fetches one listing and prints the articles as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"geeknews/internal/config"
	"geeknews/internal/logging"
	"geeknews/internal/tool"
)

func main() {
	category := flag.String("category", "top", "listing category (top, new, ask, show)")
	count := flag.Int("count", 0, "number of articles (0 uses the configured default)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, *debug)

	handler, err := tool.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create tool handler: %v", err)
	}

	n := *count
	if n == 0 {
		n = cfg.DefaultCount
	}

	articles, err := handler.GetArticles(context.Background(), *category, n)
	if err != nil {
		logger.Fatalf("Fetching articles failed: %v", err)
	}

	out, err := json.MarshalIndent(tool.ArticlesResponse{Articles: articles}, "", "  ")
	if err != nil {
		logger.Fatalf("Encoding articles failed: %v", err)
	}
	fmt.Println(string(out))
}
