package llm

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"leading whitespace", "  \n```json\n[1, 2]\n```  ", `[1, 2]`},
		{"no closing fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"single line fence", "```json {\"a\": 1}```", `{"a": 1}`},
		{"empty", "", ""},
		{"only fences", "```json\n```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripFences_PreservesInnerBackticks(t *testing.T) {
	in := "```json\n{\"code\": \"use `go fmt`\"}\n```"
	want := `{"code": "use ` + "`go fmt`" + `"}`
	if got := StripFences(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripEmphasis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** text", "bold text"},
		{"__also bold__", "also bold"},
		{"plain text", "plain text"},
		{"  **trimmed**  ", "trimmed"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripEmphasis(tt.in); got != tt.want {
			t.Errorf("StripEmphasis(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
