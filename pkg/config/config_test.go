package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foreman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeDefaultsWithEnvSecrets(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "secret-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/foreman")

	cfg, err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.Server.APIKey)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, int64(500), cfg.Budget.DailyBudgetCents)
	assert.Equal(t, 1, cfg.Pool.LocalSlots)
	assert.Equal(t, 2, cfg.Pool.PremiumSlots)
	assert.Equal(t, 10*time.Minute, cfg.Queue.TaskTimeout())
	assert.Equal(t, time.Minute, cfg.Queue.SweeperInterval())
	assert.Equal(t, 3, cfg.Queue.DefaultMaxIterations)
	assert.True(t, cfg.Review.Enabled)
	assert.False(t, cfg.Assessor.EnableJudge)
}

func TestInitializeFileOverridesDefaults(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "secret-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/foreman")

	path := writeConfig(t, `
server:
  listen_addr: ":9000"
  rate_limit_max: 50
budget:
  daily_budget_cents: 1000
queue:
  task_timeout_ms: 120000
assessor:
  enable_judge_assessor: true
  judge_model: other-judge
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, 50, cfg.Server.RateLimitMax)
	assert.Equal(t, int64(1000), cfg.Budget.DailyBudgetCents)
	assert.Equal(t, 2*time.Minute, cfg.Queue.TaskTimeout())
	// untouched sections keep defaults
	assert.Equal(t, time.Minute, cfg.Queue.SweeperInterval())
	assert.True(t, cfg.Assessor.EnableJudge)
	assert.Equal(t, "other-judge", cfg.Assessor.JudgeModel)
}

func TestInitializeEnvWinsOverFile(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	path := writeConfig(t, `
server:
  api_key: file-key
database:
  url: postgres://file/db
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Server.APIKey)
	assert.Equal(t, "postgres://env/db", cfg.Database.URL)
}

func TestInitializeTemplateExpansion(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "secret-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/foreman")
	t.Setenv("RUNTIME_HOST", "runtime.internal")

	path := writeConfig(t, `
runtime:
  base_url: "http://{{.RUNTIME_HOST}}:8090"
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "http://runtime.internal:8090", cfg.Runtime.BaseURL)
}

func TestInitializeMissingAPIKey(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/foreman")

	_, err := Initialize("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "api_key", verr.Field)
}

func TestInitializeInvalidValues(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "k")
	t.Setenv("DATABASE_URL", "postgres://localhost/foreman")

	for name, body := range map[string]string{
		"bad threshold": "budget:\n  budget_warning_threshold: 1.5\n",
		"bad slots":     "pool:\n  local_slots: -1\n",
		"no iterations": "queue:\n  default_max_iterations: -1\n",
	} {
		path := writeConfig(t, body)
		_, err := Initialize(path)
		assert.ErrorIs(t, err, ErrInvalidValue, name)
	}
}

func TestInitializeMalformedYAML(t *testing.T) {
	t.Setenv("FOREMAN_API_KEY", "k")
	t.Setenv("DATABASE_URL", "postgres://localhost/foreman")

	path := writeConfig(t, "server: [not a map\n")
	_, err := Initialize(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestExpandEnvPreservesDollarSigns(t *testing.T) {
	in := []byte(`validation_command: "test $? -eq 0 && grep -q '^ok$' out.txt"`)
	assert.Equal(t, in, ExpandEnv(in))
}
