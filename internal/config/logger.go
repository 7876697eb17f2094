package config

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger for level. Messages below error go to
// out and errors go to errOut. Level "none" (or empty) discards everything.
func NewLogger(level string, out, errOut io.Writer) (*zap.Logger, error) {
	var low zapcore.Level
	switch level {
	case "", LevelNone:
		return zap.NewNop(), nil
	case LevelNormal:
		low = zapcore.InfoLevel
	case LevelDebug:
		low = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("%w: logging.level %q", ErrInvalidValue, level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return low <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(errOut), highPriority),
		zapcore.NewCore(encoder, zapcore.AddSync(out), lowPriority),
	)
	return zap.New(core), nil
}
