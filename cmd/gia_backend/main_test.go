package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsConfigError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	err := run(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInsecureJWTSecret)
}
