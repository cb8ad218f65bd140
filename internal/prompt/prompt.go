// Package prompt assembles the instruction set sent to the code generator.
// Builders are pure: identical inputs always yield identical prompt text.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
)

// System renders the non-negotiable generation rules for a target column
// set. The generator is told to emit a single parse operation, code only,
// with the exact ordered columns and float coercion for amounts.
func System(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = "'" + c + "'"
	}
	var buf bytes.Buffer
	buf.WriteString("You are a Python code generation engine. Your ONLY output is raw Python code.\n\n")
	buf.WriteString("Write a Python module containing exactly one function: parse(pdf_path: str) -> pd.DataFrame.\n\n")
	writeSection(&buf, "RULES", strings.TrimRight(fmt.Sprintf(
		"- Output MUST be Python code only. No explanations, no English prose.\n"+
			"- Do not include markdown fences like ```python or ```.\n"+
			"- Use pdfplumber to read the PDF text line by line. Do not use table extraction tools.\n"+
			"- The returned DataFrame must have these exact columns, in this exact order: [%s].\n"+
			"- Convert amount columns to float and fill missing values with 0.0.\n",
		strings.Join(quoted, ", ")), "\n"))
	return strings.TrimSpace(buf.String()) + "\n"
}

// User renders the task-specific context: the ground-truth schema sample,
// the first-page text excerpt, and, when present, the prior attempt's
// corrective feedback appended verbatim.
func User(schema, excerpt, feedback string) string {
	var buf bytes.Buffer
	writeSection(&buf, "TARGET_SCHEMA", schema)
	writeSection(&buf, "PDF_SAMPLE", excerpt)
	writeSection(&buf, "FEEDBACK", feedback)
	buf.WriteString("Now generate the complete Python code for the parser module.\n")
	return strings.TrimSpace(buf.String()) + "\n"
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
