package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFileMasker_SecretKeys(t *testing.T) {
	m := &EnvFileMasker{}
	in := "DATABASE_URL=postgres://localhost/foreman\nAPI_KEY=shortval\nLOG_LEVEL=debug"

	out := m.Mask(in)

	assert.Contains(t, out, "API_KEY=***MASKED***")
	assert.NotContains(t, out, "shortval")
	// Non-secret keys untouched
	assert.Contains(t, out, "LOG_LEVEL=debug")
}

func TestEnvFileMasker_MasksByKeyNameNotValueShape(t *testing.T) {
	m := &EnvFileMasker{}

	// Value too short for any regex value pattern; key name still gives it away.
	out := m.Mask("GITHUB_TOKEN=abc")

	assert.Equal(t, "GITHUB_TOKEN=***MASKED***", out)
}

func TestEnvFileMasker_ExportPrefix(t *testing.T) {
	m := &EnvFileMasker{}

	out := m.Mask("export AWS_SECRET_ACCESS_KEY=wJalrXUtnFEMI")

	assert.Equal(t, "export AWS_SECRET_ACCESS_KEY=***MASKED***", out)
}

func TestEnvFileMasker_EmptyValueUntouched(t *testing.T) {
	m := &EnvFileMasker{}

	in := "SLACK_TOKEN="
	assert.Equal(t, in, m.Mask(in))
}

func TestEnvFileMasker_NonEnvContentUntouched(t *testing.T) {
	m := &EnvFileMasker{}

	in := "if a == b {\n\treturn nil\n}"
	assert.Equal(t, in, m.Mask(in))
}

func TestEnvFileMasker_AppliesTo(t *testing.T) {
	m := &EnvFileMasker{}

	assert.True(t, m.AppliesTo("FOO=bar"))
	assert.False(t, m.AppliesTo("plain text"))
}
