package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExchangeConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	ExchangeDB   `yaml:"exchange_db"`
	PriceAPI     `yaml:"price_api"`
	KafkaService `yaml:"kafka-service"`
	LogConfig    `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ExchangeDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type PriceAPI struct {
	URL        string        `yaml:"url" env:"VITAWALLET_API_URL"`
	Timeout    time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
	CacheTTL   time.Duration `yaml:"cache_ttl" env-default:"5m"`
	MaxRetries int           `yaml:"max_retries" env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"1s"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"exchange-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *ExchangeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("EXCHANGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
