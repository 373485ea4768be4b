// internal/event/event.go
package event

// EventType names what happened, e.g. HexSelected.
type EventType string

// Event carries a type and its payload; see types.go for what each type sends.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events it subscribed to. The info panel and tests
// implement it; the session only publishes.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously on the caller's goroutine, in
// subscription order. Everything runs inside ebiten's Update, so no locking.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds listener for one event type. Subscribing twice delivers twice.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first subscription of listener for eventType.
// Listeners are compared with ==, so pass the same pointer used to subscribe.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	subs := d.listeners[eventType]
	for i, l := range subs {
		if l == listener {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch sends e to every subscriber of e.Type. A nil dispatcher drops it,
// which lets a Session run without any UI attached.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}
