package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Hosteleria-api/pkg/logger"
)

func TestNew_EstampaElServicioEnCadaLinea(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "hosteleria-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("ping")

	assert.Contains(t, buf.String(), `"service":"hosteleria-api"`)
	assert.Contains(t, buf.String(), `"time"`)
}

func TestNew_SinServicioNoEstampaCampoVacio(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("ping")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "loquesea"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Debug().Msg("invisible")
	zl.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "invisible")
	assert.Contains(t, buf.String(), "visible")
}
