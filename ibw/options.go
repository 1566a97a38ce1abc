package ibw

import "go.uber.org/zap"

// Option configures a decode call.
type Option func(*decodeOptions)

type decodeOptions struct {
	strict bool
	logger *zap.Logger
}

func defaultDecodeOptions() *decodeOptions {
	return &decodeOptions{
		strict: true,
		logger: zap.NewNop(),
	}
}

// WithLenient downgrades non-zero post-data padding from a fatal error
// to a warning on the configured logger.
func WithLenient() Option {
	return func(o *decodeOptions) {
		o.strict = false
	}
}

// WithLogger sets the logger used for lenient-mode warnings.
// The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *decodeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
