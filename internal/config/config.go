// Package config resolves process configuration from the environment.
package config

import (
	"net"
	"os"
	"strings"
)

// Server holds the HTTP surface settings.
type Server struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string
}

// ServerFromEnv reads server settings. LEARNLENS_ADDR takes precedence;
// PORT (a bare port number) is honored for platform deploys.
func ServerFromEnv() Server {
	addr := os.Getenv("LEARNLENS_ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = net.JoinHostPort("", port)
		}
	}
	if addr == "" {
		addr = ":8000"
	}
	return Server{Addr: addr}
}

// YouTubeAPIKey returns the video index credential, or "" when the
// index should run disabled.
func YouTubeAPIKey() string {
	for _, name := range []string{"LEARNLENS_YOUTUBE_API_KEY", "YOUTUBE_API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
