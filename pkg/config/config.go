package config

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Tile storage backends.
const (
	BackendFilesystem = "filesystem"
	BackendMBTiles    = "mbtiles"
)

type (
	Config struct {
		HTTP      HTTP      `envPrefix:"HTTP_"`
		Tiles     Tiles     `envPrefix:"TILES_"`
		Logger    Logger    `envPrefix:"LOGGER_"`
		Telemetry Telemetry `envPrefix:"TELEMETRY_"`
	}

	HTTP struct {
		Server Server `envPrefix:"SERVER_"`
	}

	Server struct {
		Host         string        `env:"HOST" envDefault:"localhost"`
		Port         string        `env:"PORT" envDefault:"5000" validate:"required,numeric"`
		ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	}

	Tiles struct {
		Dir         string `env:"DIR" envDefault:"Tiles" validate:"required"`
		Backend     string `env:"BACKEND" envDefault:"filesystem" validate:"oneof=filesystem mbtiles"`
		MBTilesPath string `env:"MBTILES_PATH" validate:"required_if=Backend mbtiles"`
	}

	Logger struct {
		Level string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
		Dir   string `env:"DIR" envDefault:"logs"`
	}

	Telemetry struct {
		Enabled        bool   `env:"ENABLED" envDefault:"false"`
		ServiceName    string `env:"SERVICE_NAME" envDefault:"tileserv"`
		ServiceVersion string `env:"SERVICE_VERSION" envDefault:"0.1.0"`
		Environment    string `env:"ENVIRONMENT" envDefault:"production"`
		OTLPEndpoint   string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	}
)

var validate = validator.New()

func New() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("NOTICE: .env file not found or cannot be loaded: %v\n", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Addr returns the host:port pair the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Server.Host, c.HTTP.Server.Port)
}
