package anthropic

// Config contains Anthropic provider configuration.
//   - BaseURL: Maps to option.WithBaseURL(); empty uses the SDK default
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//   - MaxTokens: Output token cap for ordinary requests
//   - ThinkingBudget: Extended thinking budget for reasoning requests
type Config struct {
	BaseURL        string `env:"ANTHROPIC_BASE_URL"`
	Timeout        int    `env:"ANTHROPIC_TIMEOUT"         envDefault:"120"`
	MaxTokens      int64  `env:"ANTHROPIC_MAX_TOKENS"      envDefault:"4096"`
	ThinkingBudget int64  `env:"ANTHROPIC_THINKING_BUDGET" envDefault:"24000"`
}
