package openai

// Config holds configuration for the OpenAI reply generator.
type Config struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	BaseURL     string  `env:"OPENAI_BASE_URL"`
	Model       string  `env:"CHAT_MODEL"        envDefault:"gpt-3.5-turbo-16k"`
	Temperature float64 `env:"CHAT_TEMPERATURE"  envDefault:"0.7"`
	MaxTokens   int     `env:"CHAT_MAX_TOKENS"   envDefault:"800"`
	Timeout     int     `env:"OPENAI_TIMEOUT"    envDefault:"30"`
	MaxRetries  int     `env:"OPENAI_MAX_RETRIES" envDefault:"3"`
}
