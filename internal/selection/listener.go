package selection

import "github.com/benZhai01/vstest/internal/domain"

// Listener adapts discovery engine callbacks onto the accumulator and the
// filter tracker. Safe to invoke from any goroutine the engine chooses: all
// shared state is guarded by the accumulator's lock.
type Listener struct {
	acc       *Accumulator
	fragments []string
	tracker   *FilterTracker
	msg       Messenger
}

// NewListener creates a Listener driving the given accumulator and tracker
func NewListener(acc *Accumulator, fragments []string, tracker *FilterTracker, msg Messenger) *Listener {
	return &Listener{
		acc:       acc,
		fragments: fragments,
		tracker:   tracker,
		msg:       msg,
	}
}

// OnDiscoveredTests records one batch of newly discovered tests
func (l *Listener) OnDiscoveredTests(batch []*domain.TestCase) {
	l.acc.RecordBatch(batch, l.fragments, l.tracker)
}

// OnWarning forwards an engine warning to the user
func (l *Listener) OnWarning(message string) {
	l.msg.Warnf("%s", message)
}
