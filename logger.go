package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

func newLogger(out io.Writer, debug bool, format string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	switch format {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return logger, nil
}
