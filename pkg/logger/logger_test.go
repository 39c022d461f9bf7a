package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqautoexpert/suite360-movil/pkg/logger"
)

// ──────────────────────────────────────────────
// New
// ──────────────────────────────────────────────

func TestNew_AplicaElNivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	require.NotNil(t, l)

	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel(),
		"el logger global debe quedar en el nivel configurado")
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	logger.New(logger.Config{Env: "production", Level: "verboso"})

	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel(),
		"un nivel que zerolog no reconoce no debe tumbar el arranque")
}

func TestNew_NivelVacioCaeEnInfo(t *testing.T) {
	logger.New(logger.Config{Env: "development"})

	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
}

// ──────────────────────────────────────────────
// Nop
// ──────────────────────────────────────────────

func TestNop_DescartaSinPanico(t *testing.T) {
	l := logger.Nop()

	assert.NotPanics(t, func() {
		l.Info().Str("campo", "valor").Msg("mensaje descartado")
		l.Error().Msg("tampoco sale")
	})
}
