package main

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologAdapter bridges zerolog to the engine's Logger interface.
type zerologAdapter struct {
	l zerolog.Logger
}

func newZerologAdapter() *zerologAdapter {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &zerologAdapter{l: l}
}

func (z *zerologAdapter) Debugf(format string, args ...any) { z.l.Debug().Msgf(format, args...) }
func (z *zerologAdapter) Infof(format string, args ...any)  { z.l.Info().Msgf(format, args...) }
func (z *zerologAdapter) Warnf(format string, args ...any)  { z.l.Warn().Msgf(format, args...) }
func (z *zerologAdapter) Errorf(format string, args ...any) { z.l.Error().Msgf(format, args...) }
