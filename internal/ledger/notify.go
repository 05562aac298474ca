package ledger

import (
	"sync"

	"github.com/go-denis/vault-ledger/internal/domain"
)

// Subscription delivers ledger notifications to a single observer.
//
// Events arrive on C in commit order. The channel is closed by Close.
type Subscription struct {
	C <-chan domain.Event

	c      chan domain.Event
	once   sync.Once
	cancel func()
}

// Close unregisters the subscription and closes its channel. It is safe to
// call more than once.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// Subscribe registers an observer of ledger notifications. Events that
// arrive while the subscriber's buffer is full are dropped for that
// subscriber rather than stalling ledger operations.
func (l *Ledger) Subscribe(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 1
	}

	s := &Subscription{c: make(chan domain.Event, buffer)}
	s.C = s.c
	s.cancel = func() {
		l.subMu.Lock()
		defer l.subMu.Unlock()

		delete(l.subs, s)
		close(s.c)
	}

	l.subMu.Lock()
	defer l.subMu.Unlock()

	l.subs[s] = struct{}{}

	return s
}

// publish fans an event out to every subscriber without blocking.
func (l *Ledger) publish(ev domain.Event) {
	l.subMu.Lock()
	defer l.subMu.Unlock()

	for s := range l.subs {
		select {
		case s.c <- ev:
		default:
			l.logger.Warn().Str("event", ev.EventName()).Msg("subscriber buffer full, notification dropped")
		}
	}
}
