package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended (upper-cased) to every field name to form the
// environment variable that configures it, e.g. FASTAPI_TEMPLATE_TID_CLIENT_ID.
const EnvPrefix = "FASTAPI_TEMPLATE_"

// envFiles are consulted from highest to lowest priority. godotenv never
// overrides a variable that is already set, so loading the highest-priority
// file first makes explicit environment variables win over every file and
// .env.prod win over .env.dev and .env.
var envFiles = []string{".env.prod", ".env.dev", ".env"}

// Config holds all configuration values for the application. It is loaded
// once at startup and treated as read-only afterwards.
type Config struct {
	TIDClientName    string
	TIDClientID      string
	TIDScopes        string
	TIDBaseURL       string
	TIDOIDCURL       string
	CORSExtraOrigins string
	Port             string
	LogLevel         string
}

// Field describes one declared configuration value. The set of fields is a
// static registry so that tooling (the env template generator) can enumerate
// them without runtime reflection.
type Field struct {
	Name    string
	Type    string
	Default string
}

// Fields returns every declared configuration field in declaration order
func Fields() []Field {
	return []Field{
		{Name: "tid_client_name", Type: "string", Default: "fastapi-template"},
		{Name: "tid_client_id", Type: "string", Default: "unique client id"},
		{Name: "tid_scopes", Type: "string", Default: "openid fastapi-template"},
		{Name: "tid_base_url", Type: "string", Default: "https://identityurl.com"},
		{Name: "tid_oidc_url", Type: "string", Default: "https://identityurl.com/.well-known/openid-configuration"},
		{Name: "cors_extra_origins", Type: "string", Default: ""},
		{Name: "port", Type: "string", Default: "8080"},
		{Name: "log_level", Type: "string", Default: "info"},
	}
}

// EnvName returns the prefixed environment variable name for a field
func (f Field) EnvName() string {
	return EnvPrefix + strings.ToUpper(f.Name)
}

// Load loads configuration from environment variables, falling back to the
// dotenv files and then to the declared defaults
func Load() (*Config, error) {
	for _, file := range envFiles {
		// Missing files are fine; only present ones contribute values
		_ = godotenv.Load(file)
	}

	return &Config{
		TIDClientName:    getField("tid_client_name"),
		TIDClientID:      getField("tid_client_id"),
		TIDScopes:        getField("tid_scopes"),
		TIDBaseURL:       getField("tid_base_url"),
		TIDOIDCURL:       getField("tid_oidc_url"),
		CORSExtraOrigins: getField("cors_extra_origins"),
		Port:             getField("port"),
		LogLevel:         getField("log_level"),
	}, nil
}

// ExtraOrigins parses the comma-separated cors_extra_origins value
func (c *Config) ExtraOrigins() []string {
	return parseOrigins(c.CORSExtraOrigins)
}

// getField resolves a declared field from the environment, falling back to
// its declared default
func getField(name string) string {
	for _, f := range Fields() {
		if f.Name == name {
			return getEnv(f.EnvName(), f.Default)
		}
	}
	return ""
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
