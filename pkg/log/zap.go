package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or "development"
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the application logger from the given config. Log output goes
// to stderr so command output on stdout stays machine-readable.
func Init(cfg ZapConfig) Logger {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zapConfig.Encoding = cfg.Encoding
	}
	if zapConfig.Encoding == "console" && cfg.ColorEnabled {
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any) { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	z.sugar.Debugf(template, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...any) { z.sugar.Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	z.sugar.Infof(template, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...any) { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	z.sugar.Warnf(template, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...any) { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	z.sugar.Errorf(template, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...any) { z.sugar.Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	z.sugar.Fatalf(template, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.sugar.DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	z.sugar.DPanicf(template, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...any) { z.sugar.Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	z.sugar.Panicf(template, args...)
}
