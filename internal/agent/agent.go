// Package agent drives the self-correction loop: generate a parser, persist
// it, verify it in isolation, and feed the failure back into the next
// attempt until it passes or the budget runs out.
package agent

import (
	"context"
	"log"

	"parseforge/internal/artifact"
	"parseforge/internal/codegen"
	"parseforge/internal/config"
	"parseforge/internal/corpus"
	"parseforge/internal/llmclient"
	"parseforge/internal/prompt"
	"parseforge/internal/verify"
)

// Generator produces sanitized code text for a prompt pair.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Writer persists the artifact, replacing any previous attempt.
type Writer interface {
	Write(code string) error
}

// Verifier runs the persisted artifact against the reference corpus.
type Verifier interface {
	Verify(ctx context.Context) verify.Result
}

// Agent owns the retry budget and the running feedback text. Everything
// else it delegates to its collaborators.
type Agent struct {
	Corpus       *corpus.Corpus
	Generator    Generator
	Writer       Writer
	Verifier     Verifier
	ArtifactPath string
	MaxAttempts  int
	Logf         func(format string, args ...any)
}

// Outcome is the terminal report of a run. A false Passed after Attempts ==
// MaxAttempts means the budget is exhausted; the last-written artifact stays
// on disk as the best-effort result.
type Outcome struct {
	Passed         bool
	Attempts       int
	ArtifactPath   string
	LastDiagnostic string
}

// New wires the standard collaborators for a configured run.
func New(cfg *config.Config, llm llmclient.LLMClient, c *corpus.Corpus) *Agent {
	return &Agent{
		Corpus:       c,
		Generator:    &codegen.Generator{LLM: llm},
		Writer:       &artifact.Writer{Path: cfg.ParserPath},
		ArtifactPath: cfg.ParserPath,
		MaxAttempts:  cfg.MaxAttempts,
		Verifier: &verify.Verifier{
			Python:       cfg.Python,
			ArtifactPath: cfg.ParserPath,
			PDFPath:      c.PDFPath,
			CSVPath:      c.CSVPath,
			Timeout:      cfg.VerifyTimeout,
		},
	}
}

// Run executes up to MaxAttempts generate -> write -> verify cycles,
// stopping on the first success. Only a write failure (or a cancelled
// context) is returned as an error; generation and verification failures
// are absorbed into the next attempt's feedback.
func (a *Agent) Run(ctx context.Context) (Outcome, error) {
	max := a.MaxAttempts
	if max <= 0 {
		max = config.DefaultMaxAttempts
	}

	system := prompt.System(a.Corpus.Columns)
	schema := a.Corpus.SchemaSample(5)
	out := Outcome{ArtifactPath: a.ArtifactPath}

	feedback := ""
	for attempt := 1; attempt <= max; attempt++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out.Attempts = attempt
		a.logf("attempt %d/%d: generating parser for %s", attempt, max, a.Corpus.Target)

		code, err := a.Generator.Generate(ctx, system, prompt.User(schema, a.Corpus.Excerpt, feedback))
		if err != nil {
			a.logf("attempt %d/%d: generation failed: %v", attempt, max, err)
			out.LastDiagnostic = err.Error()
			feedback = correction(err.Error())
			continue
		}

		if err := a.Writer.Write(code); err != nil {
			return out, err
		}
		a.logf("attempt %d/%d: artifact written to %s, verifying", attempt, max, a.ArtifactPath)

		res := a.Verifier.Verify(ctx)
		if res.Passed {
			out.Passed = true
			a.logf("attempt %d/%d: verification passed, parser at %s", attempt, max, a.ArtifactPath)
			return out, nil
		}
		a.logf("attempt %d/%d: verification failed:\n%s", attempt, max, res.Diagnostic)
		out.LastDiagnostic = res.Diagnostic
		feedback = correction(res.Diagnostic)
	}

	a.logf("exhausted %d attempts, last artifact retained at %s for inspection", max, a.ArtifactPath)
	return out, nil
}

// correction wraps a diagnostic into the corrective instruction for the
// next attempt. The previous feedback is replaced, never appended: only the
// most recent failure matters.
func correction(diagnostic string) string {
	return "The previous attempt failed. Here is the error message:\n" +
		diagnostic +
		"\nAnalyze the error and provide a corrected version of the code."
}

func (a *Agent) logf(format string, args ...any) {
	if a.Logf != nil {
		a.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
