package aggregator

// Config contains gateway adapter configuration.
//   - Timeout: HTTP client timeout in seconds
//   - BaseURLs: gateway=url overrides, checked before the built-in table
//   - URLPattern: fallback for unknown gateways; "{gateway}" is replaced by the
//     gateway slug. Empty disables the fallback.
type Config struct {
	Timeout    int               `env:"AGGREGATOR_TIMEOUT"     envDefault:"60"`
	BaseURLs   map[string]string `env:"AGGREGATOR_BASE_URLS"   envKeyValSeparator:"="`
	URLPattern string            `env:"AGGREGATOR_URL_PATTERN" envDefault:"https://api.{gateway}.com/v1"`
}
