package config

// DefaultConfig returns the built-in defaults. Every value here can be
// overridden by foreman.yaml or the environment.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:        ":8080",
			CORSOrigins:       []string{"http://localhost:3000"},
			RateLimitWindowMS: 60_000,
			RateLimitMax:      100,
		},
		Budget: BudgetConfig{
			DailyBudgetCents: 500,
			WarningThreshold: 0.8,
			Enabled:          true,
		},
		Pool: PoolConfig{
			LocalSlots:   1,
			PremiumSlots: 2,
		},
		Queue: QueueConfig{
			TaskTimeoutMS:        600_000, // 10 min wall clock
			SweeperIntervalMS:    60_000,
			PollIntervalMS:       1_000,
			DefaultMaxIterations: 3,
		},
		Review: ReviewConfig{
			Enabled:       true,
			MinComplexity: 3,
			Model:         "claude-opus",
		},
		Assessor: AssessorConfig{
			EnableJudge: false,
			JudgeModel:  "claude-haiku",
		},
		Runtime: RuntimeConfig{
			BaseURL:   "http://localhost:8090",
			TimeoutMS: 600_000,
		},
		LLM: LLMConfig{
			GRPCAddr: "localhost:50051",
		},
		Masking: MaskingConfig{
			Enabled:      true,
			PatternGroup: "secrets",
		},
		Retention: RetentionConfig{
			Enabled:           true,
			TaskRetentionDays: 30,
			EventTTLMS:        86_400_000, // 24 h
			CleanupIntervalMS: 3_600_000,  // 1 h
		},
	}
}
