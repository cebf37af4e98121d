package config

const defaultServiceName = "expense-bot"

type TracingConfig struct {
	IsEnabled bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	Service   string `yaml:"service-name" env:"TRACING_SERVICE_NAME"`
}

func (t *TracingConfig) Enabled() bool {
	return t.IsEnabled
}

func (t *TracingConfig) ServiceName() string {
	if t.Service == "" {
		return defaultServiceName
	}
	return t.Service
}
