// Package main is the entry point for jwtinspect
package main

import (
	"github.com/jrschumacher/jwtinspect/cmd"
	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Debug("Loaded config", "config", cfg.String())

	cmd.Execute(cfg)
}
