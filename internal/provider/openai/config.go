package openai

// Config contains OpenAI-compatible vendor configuration.
// The same struct is parsed twice, once per vendor prefix (OPENAI_, XAI_).
// All fields map to OpenAI SDK options:
//   - BaseURL: Maps to option.WithBaseURL(); empty uses the vendor default
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//
// Retries are always disabled; the router owns fallback.
type Config struct {
	BaseURL   string `env:"BASE_URL"`
	Timeout   int    `env:"TIMEOUT"    envDefault:"60"`
	ImageSize string `env:"IMAGE_SIZE" envDefault:"1024x1024"`
}
