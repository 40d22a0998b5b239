package masking

import (
	"log/slog"
)

// CustomPattern is an operator-supplied regex masker from configuration.
type CustomPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description"`
}

// Config holds the masking settings.
type Config struct {
	Enabled        bool
	PatternGroup   string // built-in group name; defaults to "secrets"
	CustomPatterns []CustomPattern
}

// Service applies data masking to agent tool observations and inputs.
// Created once at application startup. Thread-safe and stateless aside
// from compiled patterns.
type Service struct {
	enabled     bool
	group       string
	patterns    map[string]*CompiledPattern
	customNames []string
	codeMaskers []Masker
}

// NewService creates a masking service with compiled patterns and registered
// maskers. All patterns are compiled eagerly; invalid patterns are logged
// and skipped.
func NewService(cfg Config) *Service {
	group := cfg.PatternGroup
	if group == "" {
		group = "secrets"
	}
	s := &Service{
		enabled:  cfg.Enabled,
		group:    group,
		patterns: make(map[string]*CompiledPattern),
	}

	s.compileBuiltinPatterns()
	s.compileCustomPatterns(cfg.CustomPatterns)
	s.codeMaskers = []Masker{&EnvFileMasker{}}

	slog.Info("Masking service initialized",
		"enabled", cfg.Enabled,
		"pattern_group", group,
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers))
	return s
}

// MaskObservation scrubs a tool observation before it is persisted or
// streamed. On masking failure the content is replaced with a redaction
// notice (fail-closed): a lost observation is recoverable, a leaked secret
// is not.
func (s *Service) MaskObservation(content string) string {
	if s == nil || !s.enabled || content == "" {
		return content
	}

	masked, err := s.apply(content)
	if err != nil {
		slog.Error("Masking failed, redacting observation (fail-closed)", "error", err)
		return "[REDACTED: data masking failure, observation could not be safely processed]"
	}
	return masked
}

// MaskInput scrubs a tool input string. Same policy as MaskObservation.
func (s *Service) MaskInput(content string) string {
	return s.MaskObservation(content)
}

// apply runs code-based maskers first (structural awareness), then the
// regex sweep from the configured group.
func (s *Service) apply(content string) (string, error) {
	masked := content

	for _, m := range s.codeMaskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, cp := range s.resolveGroup(s.group) {
		masked = cp.Regex.ReplaceAllString(masked, cp.Replacement)
	}
	return masked, nil
}
