package config

type MetricsConfig struct {
	ListenPort int `yaml:"port" env:"METRICS_PORT"`
}

// Port of the prometheus endpoint, zero disables it.
func (m *MetricsConfig) Port() int {
	return m.ListenPort
}
