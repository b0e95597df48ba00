package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr           string
	Debug          bool
	CatalogPath    string // optional external seed; empty means embedded catalog
	AssistantDelay time.Duration
	JWTSigningKey  string
	DemoEmail      string
	DemoPassword   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PACKPORT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	delay := 1200 * time.Millisecond
	if raw := os.Getenv("PACKPORT_ASSISTANT_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			delay = d
		}
	}

	jwtSigningKey := os.Getenv("PACKPORT_JWT_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	demoEmail := os.Getenv("PACKPORT_DEMO_EMAIL")
	if demoEmail == "" {
		demoEmail = "jane.doe@email.com"
	}
	demoPassword := os.Getenv("PACKPORT_DEMO_PASSWORD")
	if demoPassword == "" {
		demoPassword = "packport-demo"
	}

	return Server{
		Addr:           addr,
		Debug:          os.Getenv("PACKPORT_DEBUG") == "true",
		CatalogPath:    os.Getenv("PACKPORT_CATALOG"),
		AssistantDelay: delay,
		JWTSigningKey:  jwtSigningKey,
		DemoEmail:      demoEmail,
		DemoPassword:   demoPassword,
	}
}
