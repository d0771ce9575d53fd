package world

import "reflect"

// DockShown is emitted when the boat settles at a dock.
type DockShown struct {
	Island string
}

// DockHidden is emitted when the boat leaves a dock it was settled at.
type DockHidden struct {
	Island string
}

// ContactStarted and ContactEnded report sensor overlaps of the player hull.
type ContactStarted struct {
	Sensor string
}

type ContactEnded struct {
	Sensor string
}

// Bus queues events during a frame and hands them to subscribers when
// Flush is called after the frame. Single goroutine only.
type Bus struct {
	pending  []any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]func(any))}
}

// Emit queues ev for the next Flush.
func Emit[T any](b *Bus, ev T) {
	b.pending = append(b.pending, ev)
}

// Subscribe registers fn for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// Flush delivers queued events in emission order and clears the queue.
func (b *Bus) Flush() {
	events := b.pending
	b.pending = nil
	for _, ev := range events {
		for _, h := range b.handlers[reflect.TypeOf(ev)] {
			h(ev)
		}
	}
}

// Pending is the number of queued events.
func (b *Bus) Pending() int {
	return len(b.pending)
}
