package logger_test

import (
	"errors"
	"handy/config"
	"handy/shared/logger"
	"testing"
)

func TestInitLogger(t *testing.T) {
	logger.InitLogger()
}

func TestErrorWithStack(t *testing.T) {
	logger.InitLogger()
	logger.ErrorWithStack(errors.New("test error"))
}

func TestSetLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.LogLevel = "debug"

	logger.SetLogLevel(cfg)

	cfg.Server.LogLevel = "not-a-level"
	logger.SetLogLevel(cfg)
}
