package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns console logger writing to stderr with datetime and caller information.
// Debug level is enabled if verbose is true, otherwise only warnings and errors are written.
func newLogger(verbose bool) (*zap.Logger, error) {
	minLevel := zapcore.WarnLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}
	enabled := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.Lock(os.Stderr), enabled)
	return zap.New(core, zap.AddCaller()), nil
}
