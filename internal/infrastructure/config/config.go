package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Prometheus Prometheus
	Pagination Pagination
}

type HTTPServer struct {
	Address      string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Prometheus struct {
	Address string
	Port    int
}

type Pagination struct {
	PageSize    int
	MaxPageSize int
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from path. A missing file is not an error: every key
// has a default and can be overridden from the environment (http_server.port
// becomes HTTP_SERVER_PORT).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.read_timeout", "10s")
	v.SetDefault("http_server.write_timeout", "15s")
	v.SetDefault("http_server.idle_timeout", "60s")

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("pagination.page_size", 5)
	v.SetDefault("pagination.max_page_size", 50)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      v.GetString("http_server.address"),
			Port:         v.GetInt("http_server.port"),
			ReadTimeout:  v.GetDuration("http_server.read_timeout"),
			WriteTimeout: v.GetDuration("http_server.write_timeout"),
			IdleTimeout:  v.GetDuration("http_server.idle_timeout"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Pagination: Pagination{
			PageSize:    v.GetInt("pagination.page_size"),
			MaxPageSize: v.GetInt("pagination.max_page_size"),
		},
	}

	if config.Pagination.PageSize <= 0 {
		return nil, errors.New("pagination.page_size must be positive")
	}
	if config.Pagination.MaxPageSize < config.Pagination.PageSize {
		return nil, errors.New("pagination.max_page_size must not be less than pagination.page_size")
	}

	return config, nil
}
