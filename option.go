package lfu

import (
	"io"

	"github.com/sirupsen/logrus"
)

type (
	// Option configures a [Cache] during construction.
	Option interface {
		apply(*settings)
	}
	optionFunc func(*settings)
)

type settings struct {
	log *logrus.Logger
}

func (fn optionFunc) apply(set *settings) { fn(set) }

// WithLogger sets the logger used to report maintenance events
// (selection passes and clears) at debug level.
// By default, nothing is logged.
// A nil logger is ignored.
func WithLogger(log *logrus.Logger) Option {
	return optionFunc(func(set *settings) {
		if log != nil {
			set.log = log
		}
	})
}

func makeSettings(options []Option) settings {
	var set settings
	for _, option := range options {
		option.apply(&set)
	}
	if set.log == nil {
		set.log = discardLogger()
	}
	return set
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
