package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel_Debug(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
}

func TestParseLogLevel_WarnAliases(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
}

func TestParseLogLevel_Error(t *testing.T) {
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
}

func TestParseLogLevel_UnknownDefaultsToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLogLevel("nonsense"))
}

func TestExitWith_CarriesCodeAndMessage(t *testing.T) {
	err := exitWith(ExitFound, "boom")
	ce, ok := err.(*cliError)
	if !ok {
		t.Fatalf("expected *cliError, got %T", err)
	}
	assert.Equal(t, ExitFound, ce.code)
	assert.Equal(t, "boom", ce.Error())
}
