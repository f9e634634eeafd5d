package StrideMap

import "log/slog"

const defaultPutRetries = 3

type config struct {
	logger     *slog.Logger
	putRetries int
}

// Option configures a StrideMap at construction. Options survive rehashing.
type Option func(*config)

// WithLogger reports every rehash to l at debug level. The map logs nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxPutRetries bounds how many insertion attempts a single Put may make before it
// gives up and panics. Each failed attempt grows the table once, so two attempts always
// suffice for a healthy map; values below 1 are ignored.
func WithMaxPutRetries(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.putRetries = n
		}
	}
}

func newConfig(opts []Option) config {
	c := config{putRetries: defaultPutRetries}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
