package config

type TelegramConfig struct {
	ApiToken string `yaml:"token" env:"TELEGRAM_TOKEN"`
	OwnerID  int64  `yaml:"owner-id" env:"TELEGRAM_OWNER_ID"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

// Owner is the only user the bot answers to, zero means anyone.
func (t *TelegramConfig) Owner() int64 {
	return t.OwnerID
}
