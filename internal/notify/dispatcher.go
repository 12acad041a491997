package notify

import (
	"premise-hub/utils"
)

// Sender delivers one addressed event to a party. Implementations are the
// transport boundary: the hub never learns whether delivery succeeded.
type Sender interface {
	Send(to string, kind Kind, payload any) error
}

// Dispatcher fans out notifications to the transport asynchronously.
// Delivery is at-most-once and best-effort: failures are logged, never
// surfaced to the operation that produced the event.
type Dispatcher struct {
	sender Sender
	queue  chan Notification
	done   chan struct{}
}

const dispatchQueueSize = 1024

// NewDispatcher creates a dispatcher and starts its delivery worker.
func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Notification, dispatchQueueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		if err := d.sender.Send(n.To, n.Kind, n.Payload); err != nil {
			utils.Warn("notification delivery failed", map[string]any{
				"to":    n.To,
				"kind":  string(n.Kind),
				"error": err.Error(),
			})
		}
	}
}

// Dispatch enqueues notifications for delivery. It never blocks the
// caller: if the queue is full the notification is dropped with a warning.
func (d *Dispatcher) Dispatch(notifications ...Notification) {
	for _, n := range notifications {
		select {
		case d.queue <- n:
		default:
			utils.Warn("notification queue full, dropping event", map[string]any{
				"to":   n.To,
				"kind": string(n.Kind),
			})
		}
	}
}

// Close stops the worker after draining queued notifications.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
