package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"api-template/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEnvTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.template")

	require.NoError(t, GenerateEnvTemplate(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.True(t, strings.HasPrefix(text, "# Template environment configuration for fastapi-template\n"))
	assert.Contains(t, text, "# Copy this file to .env and modify as needed")

	// One three-line block per declared field
	for _, f := range Fields() {
		assert.Contains(t, text, "# "+f.Name+" ("+f.Type+")\n"+f.EnvName()+"="+f.Default+"\n")
	}

	assignment := regexp.MustCompile(`(?m)^FASTAPI_TEMPLATE_[A-Z_]+=`)
	assert.Len(t, assignment.FindAllString(text, -1), len(Fields()))
}

func TestGenerateEnvTemplateOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.template")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	require.NoError(t, GenerateEnvTemplate(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale content")
}

func TestGenerateEnvTemplateUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ".env.template")

	err := GenerateEnvTemplate(path)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected an AppError")
	assert.Equal(t, errors.ErrorTypeFilesystem, appErr.Type)
}

func TestGenerateEnvTemplateUsesDeclaredDefaults(t *testing.T) {
	// Live environment values must not leak into the template
	t.Setenv("FASTAPI_TEMPLATE_TID_CLIENT_ID", "live-value")

	path := filepath.Join(t.TempDir(), ".env.template")
	require.NoError(t, GenerateEnvTemplate(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "FASTAPI_TEMPLATE_TID_CLIENT_ID=unique client id")
	assert.NotContains(t, string(content), "live-value")
}
