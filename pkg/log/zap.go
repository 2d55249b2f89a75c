package log

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// ZapConfig configures the zap backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// FilePath enables a rotating log file next to stdout when set.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode != ModeProduction {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)}
	if cfg.FilePath != "" {
		fileEncCfg := zap.NewProductionEncoderConfig()
		fileEncCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    orDefault(cfg.MaxSizeMB, 100),
				MaxBackups: orDefault(cfg.MaxBackups, 30),
				MaxAge:     orDefault(cfg.MaxAgeDays, 90),
			}),
			level,
		))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(zapcore.NewTee(cores...), opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if fields := fieldsFromContext(ctx); len(fields) > 0 {
		return l.sugar.With(fields...)
	}
	return l.sugar
}

// Structured calls pass a message followed by key/value pairs.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).Debugw(msg, kv...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).Infow(msg, kv...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).Warnw(msg, kv...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).Errorw(msg, kv...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).DPanicw(msg, kv...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).Panicw(msg, kv...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	msg, kv := msgAndFields(arg)
	l.with(ctx).Fatalw(msg, kv...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// msgAndFields splits "msg", k1, v1, ... into zap's *w form. Anything that
// is not a message plus key/value pairs is rendered as a plain message.
func msgAndFields(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	msg, ok := arg[0].(string)
	if !ok {
		return fmt.Sprint(arg...), nil
	}
	rest := arg[1:]
	if len(rest)%2 != 0 {
		// e.g. logger.Error(ctx, "failed: ", err)
		return msg + fmt.Sprint(rest...), nil
	}
	return msg, rest
}
