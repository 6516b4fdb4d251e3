// Package analysis turns the raw records of an Instagram export into
// time-bucketed and ranked statistics. It consumes an export through the
// Source interface and returns plain maps and slices; rendering them is the
// caller's business.
package analysis

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/calegan/instalens/archive"
)

// Source is the slice of the export reader the aggregations need.
// *archive.Export satisfies it; tests substitute counting doubles.
type Source interface {
	ListConversations() ([]string, error)
	Messages(fragment string) ([]archive.Message, error)
	LoginHistory() ([]archive.LoginRecord, error)
}

// Analyzer runs aggregations against one export. It owns the cyclic-breakdown
// memo cache, so results computed once per (axis, owner) are reused for the
// Analyzer's lifetime. The underlying export is assumed immutable while the
// process runs; the cache is never invalidated if the tree changes on disk.
type Analyzer struct {
	src Source
	log zerolog.Logger
	loc *time.Location

	mu     sync.Mutex
	cycles map[cycleKey]*CyclicBreakdown
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// WithLocation sets the location used to interpret epoch timestamps.
// The default is time.Local, matching how the export was analyzed originally.
func WithLocation(loc *time.Location) Option {
	return func(a *Analyzer) { a.loc = loc }
}

// New builds an Analyzer over src.
func New(src Source, opts ...Option) *Analyzer {
	a := &Analyzer{
		src:    src,
		log:    zerolog.Nop(),
		loc:    time.Local,
		cycles: make(map[cycleKey]*CyclicBreakdown),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ForEachMessage walks every message of every conversation, pairing each
// message with its conversation folder name. Conversations come in
// enumeration order, messages in file order (newest first). The walk is
// restartable and side-effect free beyond file reads; fn returning an error
// stops it and that error is returned unmodified.
func (a *Analyzer) ForEachMessage(fn func(m archive.Message, conversation string) error) error {
	conversations, err := a.src.ListConversations()
	if err != nil {
		return err
	}
	for _, name := range conversations {
		msgs, err := a.src.Messages(name)
		if err != nil {
			return err
		}
		for _, m := range msgs {
			if err := fn(m, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// timeOfMillis converts a message timestamp (epoch milliseconds) into the
// Analyzer's location.
func (a *Analyzer) timeOfMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(a.loc)
}
