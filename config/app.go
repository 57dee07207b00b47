package config

import (
	"context"
	"log"
	"os"
	"time"
)

// CatalogAPIURL is the base URL of the remote catalog API the storefront
// queries. Defaults to the local mock catalog for development.
func CatalogAPIURL() string {
	url := os.Getenv("CATALOG_API_URL")
	if url == "" {
		url = "http://localhost:9090"
		log.Println("⚠️  CATALOG_API_URL not set, using local mock catalog:", url)
	}
	return url
}

// Port the storefront API listens on.
func Port() string {
	return getEnv("PORT", "8081")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// WithTimeout returns a context with a 10s timeout for outbound calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithCustomTimeout returns a context with the given timeout
func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
