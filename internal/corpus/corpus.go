package corpus

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"parseforge/internal/safeio"
)

// Corpus is the fixed sample document + ground-truth table pair for one
// target. Loaded once per run and never mutated afterwards.
type Corpus struct {
	Target  string
	PDFPath string
	CSVPath string
	Columns []string
	Rows    []map[string]string
	Excerpt string
}

// Load resolves and reads the reference corpus for a target. The layout
// under the data root is data/<target>/<target>_sample.pdf and
// data/<target>/result.csv. A missing file is a configuration failure and
// must stop the run before any generation attempt.
func Load(fsys *safeio.SafeFS, target string) (*Corpus, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("corpus: empty target")
	}

	pdfPath, err := fsys.SafePath(filepath.Join(target, target+"_sample.pdf"))
	if err != nil {
		return nil, fmt.Errorf("corpus: sample document for %q: %w", target, err)
	}
	csvPath, err := fsys.SafePath(filepath.Join(target, "result.csv"))
	if err != nil {
		return nil, fmt.Errorf("corpus: ground truth for %q: %w", target, err)
	}

	raw, err := fsys.SafeReadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("corpus: read ground truth: %w", err)
	}
	columns, rows, err := parseGroundTruth(raw)
	if err != nil {
		return nil, fmt.Errorf("corpus: parse ground truth: %w", err)
	}

	return &Corpus{
		Target:  target,
		PDFPath: pdfPath,
		CSVPath: csvPath,
		Columns: columns,
		Rows:    rows,
		Excerpt: FirstPageText(pdfPath),
	}, nil
}

// parseGroundTruth keeps the header order (lost in the map form) alongside
// the per-row column lookup.
func parseGroundTruth(raw []byte) ([]string, []map[string]string, error) {
	header, err := csv.NewReader(bytes.NewReader(raw)).Read()
	if err != nil {
		return nil, nil, err
	}
	if len(header) == 0 {
		return nil, nil, fmt.Errorf("no columns in header")
	}
	rows, err := gocsv.CSVToMaps(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

// SchemaSample renders the column set plus up to n head rows as a markdown
// table, the compact schema description handed to the generator.
func (c *Corpus) SchemaSample(n int) string {
	var buf strings.Builder
	buf.WriteString("| ")
	buf.WriteString(strings.Join(c.Columns, " | "))
	buf.WriteString(" |\n|")
	for range c.Columns {
		buf.WriteString(" --- |")
	}
	buf.WriteString("\n")
	for i, row := range c.Rows {
		if i >= n {
			break
		}
		buf.WriteString("| ")
		cells := make([]string, len(c.Columns))
		for j, col := range c.Columns {
			cells[j] = row[col]
		}
		buf.WriteString(strings.Join(cells, " | "))
		buf.WriteString(" |\n")
	}
	return strings.TrimRight(buf.String(), "\n")
}
