package logging

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bloodnighttw/yap/internal/config"
)

const logFileName = "yap.log"

// Init routes the standard logrus logger to a file. The TUI owns
// stdout, so nothing may ever log there. The returned closer should
// run after the runtime exits.
func Init(cfg config.Log) (func(), error) {
	dir := config.LogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, logFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(file)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
	log.SetLevel(level(cfg))

	log.WithField("path", path).Info("logging initialized")
	return func() { _ = file.Close() }, nil
}

// level picks the log level: YAP_LOG_LEVEL wins over the config file,
// and anything unparseable falls back to info.
func level(cfg config.Log) log.Level {
	name := cfg.Level
	if env := os.Getenv("YAP_LOG_LEVEL"); env != "" {
		name = env
	}
	if name == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
