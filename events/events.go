// Package events carries user-facing notifications out of the domain stores.
// State transitions stay pure; the presentation layer subscribes and renders
// whatever it wants (the mobile app showed these as toasts).
package events

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Event struct {
	Level  Level
	Title  string
	Detail string
}

// Bus fans events out to subscribers, synchronously and in subscription
// order. A nil *Bus is valid and drops everything, so stores never have to
// guard their Publish calls.
type Bus struct {
	handlers []func(Event)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(Event)) {
	if b == nil || fn == nil {
		return
	}
	b.handlers = append(b.handlers, fn)
}

func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, fn := range b.handlers {
		fn(e)
	}
}

func (b *Bus) Success(title, detail string) { b.Publish(Event{LevelSuccess, title, detail}) }
func (b *Bus) Error(title, detail string)   { b.Publish(Event{LevelError, title, detail}) }
func (b *Bus) Info(title, detail string)    { b.Publish(Event{LevelInfo, title, detail}) }
