package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"parseforge/internal/safeio"
)

const sampleCSV = `Date,Description,Debit Amt,Credit Amt,Balance
03-08-2024,IMPS UPI Payment Amazon,3886.08,0.0,4631.11
18-08-2024,Interest Credit Saving Account,596.72,0.0,11524.79
`

func writeCorpus(t *testing.T, target string) *safeio.SafeFS {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, target)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, target+"_sample.pdf"), []byte("%PDF-1.4 not a real pdf"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "result.csv"), []byte(sampleCSV), 0o644))
	fsys, err := safeio.NewSafeFS(root)
	require.NoError(t, err)
	return fsys
}

func TestLoadKeepsColumnOrderAndRows(t *testing.T) {
	fsys := writeCorpus(t, "icici")

	c, err := Load(fsys, "icici")
	require.NoError(t, err)

	require.Equal(t, []string{"Date", "Description", "Debit Amt", "Credit Amt", "Balance"}, c.Columns)
	require.Len(t, c.Rows, 2)
	require.Equal(t, "3886.08", c.Rows[0]["Debit Amt"])
	require.Equal(t, "IMPS UPI Payment Amazon", c.Rows[0]["Description"])
}

func TestLoadMissingTargetFails(t *testing.T) {
	fsys := writeCorpus(t, "icici")

	_, err := Load(fsys, "sbi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample document")
}

func TestLoadRejectsTraversalTarget(t *testing.T) {
	fsys := writeCorpus(t, "icici")

	_, err := Load(fsys, filepath.Join("..", "icici"))
	require.Error(t, err)
}

func TestSchemaSampleRendersHeadRows(t *testing.T) {
	fsys := writeCorpus(t, "icici")
	c, err := Load(fsys, "icici")
	require.NoError(t, err)

	got := c.SchemaSample(1)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3) // header, separator, one row
	require.Equal(t, "| Date | Description | Debit Amt | Credit Amt | Balance |", lines[0])
	require.Contains(t, lines[2], "3886.08")

	// Deterministic for identical inputs.
	require.Equal(t, got, c.SchemaSample(1))
}

func TestFirstPageTextSentinelOnGarbage(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "junk.pdf")
	require.NoError(t, os.WriteFile(p, []byte("definitely not a pdf"), 0o644))

	require.Equal(t, TextUnavailable, FirstPageText(p))
	require.Equal(t, TextUnavailable, FirstPageText(filepath.Join(dir, "missing.pdf")))
}
