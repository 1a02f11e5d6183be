package config

import (
	"os"
	"strings"

	"api-template/pkg/errors"
)

// GenerateEnvTemplate writes a template dotenv file listing every declared
// configuration field with its prefixed environment variable name and
// declared default. An existing file at path is overwritten.
func GenerateEnvTemplate(path string) error {
	lines := []string{
		"# Template environment configuration for fastapi-template",
		"# Copy this file to .env and modify as needed",
		"",
	}

	for _, f := range Fields() {
		lines = append(lines,
			"# "+f.Name+" ("+f.Type+")",
			f.EnvName()+"="+f.Default,
			"",
		)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return errors.NewFilesystemError("failed to write env template to "+path, err)
	}
	return nil
}
