package config

import "testing"

func TestServerFromEnv(t *testing.T) {
	tests := []struct {
		name string
		addr string
		port string
		want string
	}{
		{"default", "", "", ":8000"},
		{"addr set", ":9090", "", ":9090"},
		{"port only", "", "3000", ":3000"},
		{"addr wins over port", "127.0.0.1:8080", "3000", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LEARNLENS_ADDR", tt.addr)
			t.Setenv("PORT", tt.port)

			if got := ServerFromEnv().Addr; got != tt.want {
				t.Errorf("addr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestYouTubeAPIKey(t *testing.T) {
	t.Setenv("LEARNLENS_YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_API_KEY", "")
	if got := YouTubeAPIKey(); got != "" {
		t.Errorf("expected empty key, got %q", got)
	}

	t.Setenv("YOUTUBE_API_KEY", "plain")
	if got := YouTubeAPIKey(); got != "plain" {
		t.Errorf("got %q, want plain", got)
	}

	// Prefixed variable takes precedence.
	t.Setenv("LEARNLENS_YOUTUBE_API_KEY", "prefixed")
	if got := YouTubeAPIKey(); got != "prefixed" {
		t.Errorf("got %q, want prefixed", got)
	}
}
