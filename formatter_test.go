package response

import (
	"strings"
	"testing"
)

func TestJSONFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{
			name:     "map",
			input:    map[string]string{"foo": "bar"},
			expected: `{"foo":"bar"}`,
		},
		{
			name:     "slice",
			input:    []int{1, 2, 3},
			expected: `[1,2,3]`,
		},
		{
			name:     "string",
			input:    "hi",
			expected: `"hi"`,
		},
		{
			name:     "nil",
			input:    nil,
			expected: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSONFormat(tt.input); got != tt.expected {
				t.Errorf("JSONFormat() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestJSONIndentFormat(t *testing.T) {
	got := JSONIndentFormat(map[string]int{"a": 1})
	if !strings.Contains(got, "\n") || !strings.Contains(got, "    ") {
		t.Errorf("JSONIndentFormat() = %q, want indented output", got)
	}
	if !strings.Contains(got, `"a": 1`) {
		t.Errorf("JSONIndentFormat() = %q", got)
	}
}

func TestJSONPFormatter(t *testing.T) {
	f := JSONPFormatter("cb")
	got := f(map[string]int{"x": 1})
	if got != `cb({"x":1});` {
		t.Errorf("formatter output = %q, want %q", got, `cb({"x":1});`)
	}
}

func TestJSONPFormatterIndent(t *testing.T) {
	f := JSONPFormatter("cb", JSONIndentFormat)
	got := f(map[string]int{"x": 1})
	if !strings.HasPrefix(got, "cb(") || !strings.HasSuffix(got, ");") {
		t.Errorf("formatter output = %q, want cb(...);", got)
	}
	if !strings.Contains(got, "\n") || !strings.Contains(got, `"x": 1`) {
		t.Errorf("formatter output = %q, want indented json inside callback", got)
	}
}
