package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/hypernet/config"
)

// newLogger builds the stderr logger from the resolved configuration.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(slog.String("component", "hypernet")), nil
}
