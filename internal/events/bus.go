package events

import (
	"sync"
)

type Handler func(event Event)

// Bus dispatches fired events synchronously to all
// its subscribers, in their order of subscription.
type Bus struct {
	mutex    sync.RWMutex
	handlers map[uint]Handler
	order    []uint
	nextID   uint
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[uint]Handler),
	}
}

// Subscribe registers the handler and returns a function to
// unsubscribe it, which is safe to call more than once.
func (b *Bus) Subscribe(handler Handler) (unsubscribe func()) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.order = append(b.order, id)

	return func() {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		if _, ok := b.handlers[id]; !ok {
			return
		}
		delete(b.handlers, id)
		for i, orderedID := range b.order {
			if orderedID == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

func (b *Bus) Fire(event Event) {
	b.mutex.RLock()
	handlers := make([]Handler, len(b.order))
	for i, id := range b.order {
		handlers[i] = b.handlers[id]
	}
	b.mutex.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
