package config

const (
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGroqBaseURL = "https://api.groq.com"
)

type GroqConfig struct {
	GroqApiKey     string `yaml:"api-key" env:"GROQ_API_KEY"`
	GroqModel      string `yaml:"model" env:"GROQ_MODEL"`
	GroqBaseURL    string `yaml:"base-url" env:"GROQ_BASE_URL"`
	RequestTimeout int64  `yaml:"timeout-seconds" env:"GROQ_TIMEOUT_SECONDS"`
}

func (g *GroqConfig) ApiKey() string {
	return g.GroqApiKey
}

func (g *GroqConfig) Model() string {
	if g.GroqModel == "" {
		return defaultGroqModel
	}
	return g.GroqModel
}

func (g *GroqConfig) BaseURL() string {
	if g.GroqBaseURL == "" {
		return defaultGroqBaseURL
	}
	return g.GroqBaseURL
}

func (g *GroqConfig) TimeoutSeconds() int64 {
	return g.RequestTimeout
}
