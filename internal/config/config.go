package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	DBPoolSize  int    `env:"DB_POOL_SIZE" envDefault:"5"`
	JWTSecret   string `env:"JWT_SECRET_KEY,required"`
	APIUsername string `env:"API_USERNAME" envDefault:"admin"`
	APIPassword string `env:"API_PASSWORD,required"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
