// Package verify executes the just-written artifact in a fresh subprocess
// and compares its output table to the ground truth. Process-level isolation
// is the point: a crash or hang in generated code must never take the
// orchestrator down with it, and a fresh interpreter per attempt means no
// stale module state leaks between attempts.
package verify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// SuccessMarker is the sentinel the harness prints on a passing comparison.
// The token is deliberately collision-proof: nothing the artifact or pandas
// prints by accident should ever contain it.
const SuccessMarker = "PARSEFORGE_VERIFY_OK_7c1d"

// DefaultTimeout bounds one verification subprocess.
const DefaultTimeout = 30 * time.Second

// Result reports one verification outcome. Diagnostic is empty on success
// and carries the captured failure output otherwise.
type Result struct {
	Passed     bool
	Diagnostic string
}

// Verifier runs the artifact at ArtifactPath against the sample document
// and the ground-truth table.
type Verifier struct {
	Python       string // interpreter binary; defaults to python3
	ArtifactPath string
	PDFPath      string
	CSVPath      string
	Timeout      time.Duration
}

// runHarness is injectable in tests.
var runHarness = func(ctx context.Context, bin, script string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, "-c", script)
	return cmd.CombinedOutput()
}

// Verify blocks until the subprocess finishes or the timeout kills it.
// Presence of the success marker in the combined output is the sole pass
// signal; everything else is a failure with a diagnostic.
func (v *Verifier) Verify(ctx context.Context) Result {
	timeout := v.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	bin := v.Python
	if bin == "" {
		bin = "python3"
	}

	out, err := runHarness(ctx, bin, v.Harness())
	if ctx.Err() == context.DeadlineExceeded {
		return Result{Diagnostic: fmt.Sprintf("verification timed out after %s; the parser may loop forever", timeout)}
	}

	text := strings.TrimSpace(string(out))
	if strings.Contains(text, SuccessMarker) {
		return Result{Passed: true}
	}
	if err != nil {
		if text == "" {
			return Result{Diagnostic: err.Error()}
		}
		return Result{Diagnostic: fmt.Sprintf("%v\n%s", err, text)}
	}
	if text == "" {
		return Result{Diagnostic: "harness produced no output and no success marker"}
	}
	return Result{Diagnostic: text}
}

// Harness renders the Python driver: load the artifact from its file path
// (bypassing sys.path and any import cache), invoke parse on the sample
// document, load the expected CSV, and compare after normalizing every cell
// to its textual representation. The astype(str) normalization tolerates
// numeric-formatting differences while still requiring identical row count,
// column set, column order, and cell content.
func (v *Verifier) Harness() string {
	return fmt.Sprintf(`import importlib.util
import traceback

import pandas as pd

try:
    spec = importlib.util.spec_from_file_location("generated_parser", %q)
    mod = importlib.util.module_from_spec(spec)
    spec.loader.exec_module(mod)

    got = mod.parse(%q)
    want = pd.read_csv(%q)

    pd.testing.assert_frame_equal(got.astype(str), want.astype(str))
    print(%q)
except Exception:
    print("Execution Error:\n" + traceback.format_exc())
`, v.ArtifactPath, v.PDFPath, v.CSVPath, SuccessMarker)
}
