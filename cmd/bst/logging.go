package main

import (
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap/zapcore"
)

// setLogWriter points every go-log logger at out with the given encoding and level.
func setLogWriter(out io.Writer, format string, level string) error {
	var ze zapcore.Encoder
	ec := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		NameKey:     "logger",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	switch format {
	case "json":
		ze = zapcore.NewJSONEncoder(ec)
	case "text":
		ze = zapcore.NewConsoleEncoder(ec)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	var zl zapcore.Level
	if err := zl.Set(level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logging.SetPrimaryCore(zapcore.NewCore(ze, zapcore.AddSync(out), zl))
	return logging.SetLogLevel("bst", level)
}
