package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/proxin187/Server-For-School/internal/connector"
	"github.com/proxin187/Server-For-School/internal/shared/types"
)

const (
	DefaultConnectTimeout = 15
	DefaultLogLevel       = "info"
)

// Default returns the built-in configuration: 127.0.0.1:5050, no write deadline.
func Default() *types.Config {
	endpoint := connector.DefaultEndpoint()
	return &types.Config{
		ClientConf: types.ClientConf{
			Host:           endpoint.Host,
			Port:           int(endpoint.Port),
			ConnectTimeout: DefaultConnectTimeout,
		},
		LogConf: types.LogConf{Level: DefaultLogLevel},
	}
}

// LoadIni maps client.ini onto cfg. A missing file keeps whatever cfg
// already holds; environment overrides are applied in both cases.
// HELLO_SERVER_ADDR (host:port) wins over HELLO_SERVER_HOST/PORT.
func LoadIni(cfg *types.Config, fileName string) error {
	if fileName != "" {
		// Loose: a missing file leaves the defaults in effect.
		iniFile, err := ini.LoadSources(ini.LoadOptions{Loose: true}, fileName)
		if err != nil {
			return fmt.Errorf("failed to load config file '%s': %w", fileName, err)
		}
		if err := iniFile.MapTo(cfg); err != nil {
			return fmt.Errorf("failed to map config file '%s': %w", fileName, err)
		}
	}

	overrideFromEnvString(&cfg.ClientConf.Host, "HELLO_SERVER_HOST")
	if err := overrideFromEnvPort(&cfg.ClientConf.Port, "HELLO_SERVER_PORT"); err != nil {
		return err
	}
	if addr := os.Getenv("HELLO_SERVER_ADDR"); addr != "" {
		endpoint, err := connector.ParseEndpoint(addr)
		if err != nil {
			return fmt.Errorf("invalid HELLO_SERVER_ADDR: %w", err)
		}
		cfg.ClientConf.Host = endpoint.Host
		cfg.ClientConf.Port = int(endpoint.Port.Value())
	}
	overrideFromEnvString(&cfg.LogConf.Level, "HELLO_LOG_LEVEL")
	return nil
}

// Load is Default followed by LoadIni and Validate.
func Load(fileName string) (*types.Config, error) {
	cfg := Default()
	if err := LoadIni(cfg, fileName); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the connector cannot dial.
func Validate(cfg *types.Config) error {
	if strings.TrimSpace(cfg.Host) == "" {
		return fmt.Errorf("invalid config: client host is empty")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid config: client port %d out of range", cfg.Port)
	}
	if cfg.ConnectTimeout < 0 {
		return fmt.Errorf("invalid config: connect_timeout %d is negative", cfg.ConnectTimeout)
	}
	if cfg.WriteTimeout < 0 {
		return fmt.Errorf("invalid config: write_timeout %d is negative", cfg.WriteTimeout)
	}
	return nil
}

func overrideFromEnvPort(target *int, envName string) error {
	envValue := os.Getenv(envName)
	if envValue == "" {
		return nil
	}
	port, err := connector.PortFromString(envValue)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", envName, err)
	}
	*target = int(port.Value())
	return nil
}

func overrideFromEnvString(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}
