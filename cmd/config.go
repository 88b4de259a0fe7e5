package cmd

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultPort = 3000

type Config struct {
	Apps struct {
		LogLevel string `yaml:"log_level"`
		Rest     struct {
			Port          int    `yaml:"port"`
			AllowedOrigin string `yaml:"allowed_origin"`
		} `yaml:"rest"`
	} `yaml:"apps"`
	Storage struct {
		Users struct {
			Type string `yaml:"type"`
		} `yaml:"users"`
		Rooms struct {
			Type string `yaml:"type"`
		} `yaml:"rooms"`
	} `yaml:"storage"`
}

func ParseConfig(path string, logger *zap.Logger) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open config file", zap.Error(err))
		return nil, fmt.Errorf("error opening file %w", err)
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		logger.Error("Failed to decode config file", zap.Error(err))
		return nil, fmt.Errorf("error decoding file %w", err)
	}

	if config.Apps.Rest.Port == 0 {
		config.Apps.Rest.Port = defaultPort
	}

	// PORT from the environment wins over the file.
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			logger.Error("Failed to parse PORT", zap.Error(err))
			return nil, fmt.Errorf("error parsing PORT %w", err)
		}
		config.Apps.Rest.Port = port
	}

	return &config, nil
}
