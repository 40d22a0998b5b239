package masking

import (
	"regexp"
	"strings"
)

// secretKeyRe matches dotenv keys whose values should never be logged.
var secretKeyRe = regexp.MustCompile(`(?i)(secret|token|password|passwd|credential|api[_-]?key|private[_-]?key|auth)`)

// envLineRe matches a KEY=value line, with optional `export ` prefix.
var envLineRe = regexp.MustCompile(`^(\s*(?:export\s+)?)([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// EnvFileMasker masks the values of secret-looking keys in dotenv-style
// output. Agents frequently cat .env files or run `env`; regex value
// patterns miss short or unusual secrets, so this masker keys off the
// variable NAME instead of the value shape.
type EnvFileMasker struct{}

// Name returns the masker identifier.
func (m *EnvFileMasker) Name() string {
	return "env_file"
}

// AppliesTo checks cheaply for KEY=value lines.
func (m *EnvFileMasker) AppliesTo(data string) bool {
	return strings.Contains(data, "=")
}

// Mask replaces the value of every secret-looking assignment, line by line.
// Non-matching lines pass through untouched.
func (m *EnvFileMasker) Mask(data string) string {
	lines := strings.Split(data, "\n")
	changed := false
	for i, line := range lines {
		match := envLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		key := match[2]
		if !secretKeyRe.MatchString(key) {
			continue
		}
		if strings.TrimSpace(match[3]) == "" {
			continue
		}
		lines[i] = match[1] + key + "=***MASKED***"
		changed = true
	}
	if !changed {
		return data
	}
	return strings.Join(lines, "\n")
}
