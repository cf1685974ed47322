// Package services contains server-side business logic: user registration,
// key validation and the admin session guard.
package services

import (
	"time"

	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/metrics"
)

// Clock abstracts time.Now so expiry rules can be tested at exact instants.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type options struct {
	clock   Clock
	log     logging.Logger
	metrics *metrics.Metrics
}

// Option customises a service at construction.
type Option func(*options)

func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics enables counters; services run without them when unset.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	o := options{clock: SystemClock{}, log: logging.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
