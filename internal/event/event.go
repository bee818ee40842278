// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Все вызовы идут из кадра
// симуляции, поэтому блокировки не нужны.
type Dispatcher struct {
	listeners map[EventType][]Listener
	pending   []Event
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на одно или несколько событий.
func (d *Dispatcher) Subscribe(listener Listener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		d.listeners[eventType] = append(d.listeners[eventType], listener)
	}
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch сразу доставляет событие подписчикам.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Queue откладывает событие до Flush. Так системы сообщают о событиях,
// найденных во время обхода сущностей, не меняя сущности посреди обхода.
func (d *Dispatcher) Queue(event Event) {
	d.pending = append(d.pending, event)
}

// Flush доставляет отложенные события в порядке постановки. События,
// поставленные подписчиками во время Flush, доставляются в этом же вызове.
func (d *Dispatcher) Flush() {
	for len(d.pending) > 0 {
		event := d.pending[0]
		d.pending = d.pending[1:]
		d.Dispatch(event)
	}
	d.pending = nil
}

// Drop отбрасывает отложенные события.
func (d *Dispatcher) Drop() {
	d.pending = nil
}
