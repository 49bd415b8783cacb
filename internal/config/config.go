package config

import "github.com/caarlos0/env/v10"

// Config centralizes the service configuration.
type Config struct {
	HTTPPort        string   `env:"PORT" envDefault:"5000"`
	AppEnv          string   `env:"APP_ENV" envDefault:"local"`
	DatabaseURL     string   `env:"DATABASE_URL,required"`
	JWTSecret       string   `env:"JWT_SECRET,required"`
	TokenTTLMinutes int      `env:"TOKEN_TTL_MINUTES" envDefault:"60"`
	AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envDefault:"https://mamacare-demo.vercel.app,http://localhost:5001"`
	OperatorEmail   string   `env:"OPERATOR_EMAIL" envDefault:"booking@mamacare.vn"`
	SMTPHost        string   `env:"SMTP_HOST"`
	SMTPPort        int      `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser        string   `env:"SMTP_USER"`
	SMTPPass        string   `env:"SMTP_PASS"`
	SMTPFrom        string   `env:"SMTP_FROM"`
	SMTPFromName    string   `env:"SMTP_FROM_NAME" envDefault:"Mamacare Support"`
	SMTPUseTLS      bool     `env:"SMTP_USE_TLS" envDefault:"false"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsLocal reports whether the service runs in local development mode.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}
