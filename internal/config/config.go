package config

import (
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "data/config.yaml"
	DefaultEnvFile    = ".env"
)

type config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Groq     GroqConfig     `yaml:"groq"`
	App      AppConfig      `yaml:"app"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the yaml file and then overlays the process environment,
// seeded from envFile. Both files are optional.
func New(configFile, envFile string) (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		err = yaml.Unmarshal(rawYAML, &s.config)
		if err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrap(err, "reading config file")
	}

	if envFile != "" {
		err = godotenv.Load(envFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "loading env file")
		}
	}

	err = env.Parse(&s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}

	return s, nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Groq() *GroqConfig {
	return &s.config.Groq
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
