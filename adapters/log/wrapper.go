package log

import (
	"fmt"
	"time"

	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/utils/helpers"
	"github.com/abhissng/versename/utils/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Helper functions to create fields without directly using zap

// String creates a single types.Field (string) for a given key-value pair.
func String(key string, value string) types.Field {
	return zap.String(key, value)
}

// Int creates a single types.Field (int) for a given key-value pair.
func Int(key string, value int) types.Field {
	return zap.Int(key, value)
}

// Int64 creates a single types.Field (int64) for a given key-value pair.
func Int64(key string, value int64) types.Field {
	return zap.Int64(key, value)
}

// Bool creates a single types.Field (bool) for a given key-value pair.
func Bool(key string, value bool) types.Field {
	return zap.Bool(key, value)
}

// Time creates a single types.Field (time.Time) for a given key-value pair.
func Time(key string, value time.Time) types.Field {
	return zap.Time(key, value)
}

// Duration creates a single types.Field (time.Duration) for a given key-value pair.
func Duration(key string, value time.Duration) types.Field {
	return zap.Duration(key, value)
}

// Any creates a single types.Field (any) for a given key-value pair.
func Any(key string, value any) types.Field {
	return zap.Any(key, value)
}

// Err creates a single types.Field (error) for a given error.
func Err(err error) types.Field {
	return zap.Error(err)
}

type errorArray []error

func (a errorArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range a {
		if e == nil {
			enc.AppendString("<nil>")
		} else {
			enc.AppendString(e.Error())
		}
	}
	return nil
}

// Blame creates a field for the causes carried by a blame.
func Blame(b blame.Blame) zap.Field {
	if b == nil {
		return zap.Skip()
	}
	cs := b.FetchCauses()
	switch len(cs) {
	case 0:
		return zap.String("error_code", b.FetchErrCode().String())
	case 1:
		return zap.Error(cs[0])
	default:
		return zap.Array("causes", errorArray(cs))
	}
}

// Stringer creates a single types.Field (fmt.Stringer) for a given key-value pair.
func Stringer(key string, value fmt.Stringer) types.Field {
	return zap.Stringer(key, value)
}

// Sprintf is a wrapper around fmt.Sprintf
func Sprintf(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

type LoggerConfig struct {
	// IsProd enables production mode (JSON output, Info level)
	IsProd bool

	// ZapOptions are the standard zap logger options
	ZapOptions []zap.Option

	// ServiceName overrides the default service name
	ServiceName string

	// Environment overrides the default environment
	Environment string

	// RotateFile enables rotated file logging at the given path
	RotateFile string
}

// LoggerOption defines a function that modifies LoggerConfig
type LoggerOption func(*LoggerConfig)

// NewLoggerConfig creates a new LoggerConfig with default values
func NewLoggerConfig(isProd bool, opts ...LoggerOption) *LoggerConfig {
	cfg := &LoggerConfig{
		ServiceName: helpers.GetServiceName(),
		Environment: helpers.GetEnvironment(),
		IsProd:      isProd,
	}

	// Apply all options
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithZapOptions adds zap logger options
func WithZapOptions(opts ...zap.Option) LoggerOption {
	return func(c *LoggerConfig) {
		c.ZapOptions = append(c.ZapOptions, opts...)
	}
}

// WithServiceName sets the service name
func WithServiceName(name string) LoggerOption {
	return func(c *LoggerConfig) {
		if name != "" {
			c.ServiceName = name
		}
	}
}

// WithEnvironment sets the environment
func WithEnvironment(env string) LoggerOption {
	return func(c *LoggerConfig) {
		if env != "" {
			c.Environment = env
		}
	}
}

// WithRotateFile enables rotated file logging at the given path
func WithRotateFile(path string) LoggerOption {
	return func(c *LoggerConfig) {
		c.RotateFile = path
	}
}
