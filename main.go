package main

import (
	"flag"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcadehub/crisscross/cmd"
	"github.com/arcadehub/crisscross/internal/rest"
	"github.com/arcadehub/crisscross/internal/utils"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	bootstrapLogger, _ := zap.NewDevelopment()

	config, err := cmd.ParseConfig(*configPath, bootstrapLogger)
	if err != nil {
		bootstrapLogger.Fatal("Failed to parse config", zap.Error(err))
	}

	level, err := zapcore.ParseLevel(config.Apps.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logger, err := utils.NewCustomLogger(level, false)
	if err != nil {
		bootstrapLogger.Fatal("Failed to create logger", zap.Error(err))
	}
	defer logger.Sync()

	restApp := rest.NewRest(&rest.Config{
		Port:             config.Apps.Rest.Port,
		AllowedOrigin:    config.Apps.Rest.AllowedOrigin,
		UsersStorageType: config.Storage.Users.Type,
		RoomsStorageType: config.Storage.Rooms.Type,
		Logger:           logger,
	})

	appsManager := cmd.NewAppsManager(logger)

	appsManager.Register(cmd.RestApp, restApp)
	appsManager.RunAll()
	appsManager.WaitForShutdown()
}
