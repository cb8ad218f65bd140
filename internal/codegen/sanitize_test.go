package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	const code = "import pandas as pd\n\ndef parse(pdf_path):\n    return pd.DataFrame()"

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare code untouched", code, code},
		{"python fence", "```python\n" + code + "\n```", code},
		{"anonymous fence", "```\n" + code + "\n```", code},
		{"leading fence only", "```python\n" + code, code},
		{"trailing fence only", code + "\n```", code},
		{"surrounding whitespace", "\n\n  " + code + "  \n", code},
		{"empty response", "```python\n```", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"```python\nimport pandas as pd\n```",
		"def parse(p):\n    pass",
		"```\nx = 1",
		"   \n```python\nx = 1\n```\n   ",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		require.Equal(t, once, Sanitize(once))
	}
}
