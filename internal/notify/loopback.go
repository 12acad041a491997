package notify

import "sync"

// Loopback is an in-process Sender that queues events per recipient.
// Used by tests and local runs in place of a real transport.
type Loopback struct {
	mu     sync.Mutex
	queues map[string]chan Notification
}

const loopbackQueueSize = 64

// NewLoopback creates an empty loopback transport.
func NewLoopback() *Loopback {
	return &Loopback{queues: make(map[string]chan Notification)}
}

// Send queues the event for the recipient. Events for a recipient whose
// queue is full are dropped, mirroring the at-most-once contract.
func (l *Loopback) Send(to string, kind Kind, payload any) error {
	select {
	case l.queue(to) <- Notification{To: to, Kind: kind, Payload: payload}:
	default:
	}
	return nil
}

// Events returns the recipient's event queue, creating it if needed.
func (l *Loopback) Events(party string) <-chan Notification {
	return l.queue(party)
}

func (l *Loopback) queue(party string) chan Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.queues[party]
	if !ok {
		q = make(chan Notification, loopbackQueueSize)
		l.queues[party] = q
	}
	return q
}
