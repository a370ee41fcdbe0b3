package gemini

// Config contains Google Gemini provider configuration.
type Config struct {
	BaseURL        string `env:"GEMINI_BASE_URL"`
	APIVersion     string `env:"GEMINI_API_VERSION"`
	Timeout        int    `env:"GEMINI_TIMEOUT"         envDefault:"120"`
	ThinkingBudget int32  `env:"GEMINI_THINKING_BUDGET" envDefault:"24000"`
}
