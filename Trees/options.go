package Trees

import "github.com/rs/zerolog"

type options struct {
	log zerolog.Logger
}

// Option configures a BST at construction.
type Option func(*options)

// WithLogger makes the tree report rejected inserts, missed deletes and rebuilds
// to l. Without it the tree logs nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func makeOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, f := range opts {
		f(&o)
	}
	return o
}
