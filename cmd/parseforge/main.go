package main

import (
	"context"
	"flag"
	"log"
	"os"

	"parseforge/internal/agent"
	"parseforge/internal/config"
	"parseforge/internal/corpus"
	"parseforge/internal/llmclient"
	"parseforge/internal/safeio"
)

func main() {
	target := flag.String("target", "", "bank target to build a parser for (e.g. icici)")
	flag.Parse()

	cfg, err := config.Load(*target, os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	llm, err := newClient(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	fsys, err := safeio.NewSafeFS(cfg.DataRoot)
	if err != nil {
		log.Fatalf("data root %s: %v", cfg.DataRoot, err)
	}
	c, err := corpus.Load(fsys, cfg.Target)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("corpus for %s: %d ground-truth rows, generator %s", c.Target, len(c.Rows), llm.Name())

	out, err := agent.New(cfg, llm, c).Run(ctx)
	llm.Close()
	if err != nil {
		log.Fatal(err)
	}
	if !out.Passed {
		os.Exit(1)
	}
}

func newClient(ctx context.Context, cfg *config.Config) (llmclient.LLMClient, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return llmclient.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	default:
		return llmclient.NewGroqClient(cfg.APIKey, cfg.Model)
	}
}
