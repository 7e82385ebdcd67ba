package playback

const eventBufferSize = 16

// Subscription delivers a player's events to one subscriber. Sends never
// block the player: events are dropped while the buffer is full.
type Subscription struct {
	Events <-chan Event
	Done   <-chan struct{}

	eventCh chan Event
	doneCh  chan struct{}
}

// NewSubscription creates a subscription with a buffered event channel.
func NewSubscription() *Subscription {
	s := &Subscription{
		eventCh: make(chan Event, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Events = s.eventCh
	s.Done = s.doneCh
	return s
}

// Send publishes e (non-blocking).
func (s *Subscription) Send(e Event) {
	select {
	case s.eventCh <- e:
	default:
		// Drop if buffer full
	}
}

// TryNext returns the next pending event without waiting.
func (s *Subscription) TryNext() (Event, bool) {
	select {
	case e := <-s.eventCh:
		return e, true
	default:
		return nil, false
	}
}

// Close signals the subscriber that no more events will come.
func (s *Subscription) Close() {
	close(s.doneCh)
}
