// SPDX-License-Identifier: MIT

package coef

// config is the resolved construction settings.
type config struct {
	orthonormalize bool
}

// Option customizes Vector construction.
type Option func(*config)

// WithOrthonormalize turns per-term normalization on or off (default off).
func WithOrthonormalize(on bool) Option {
	return func(c *config) { c.orthonormalize = on }
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
