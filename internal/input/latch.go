package input

import "time"

// KeySink принимает события клавиш: Held или матч целиком.
type KeySink interface {
	KeyDown(key string)
	KeyUp(key string)
}

// Latch эмулирует удержание клавиш там, где хост сообщает только нажатия
// (терминал). Нажатие держит клавишу hold, автоповтор продлевает удержание.
type Latch struct {
	held    KeySink
	hold    time.Duration
	holds   map[string]time.Duration
	expires map[string]time.Time
}

func NewLatch(held KeySink, hold time.Duration) *Latch {
	return &Latch{
		held:    held,
		hold:    hold,
		holds:   make(map[string]time.Duration),
		expires: make(map[string]time.Time),
	}
}

// SetHold задаёт удержание для отдельной клавиши вместо общего.
func (l *Latch) SetHold(key string, hold time.Duration) {
	l.holds[key] = hold
}

// Press регистрирует нажатие или автоповтор.
func (l *Latch) Press(key string, now time.Time) {
	hold, ok := l.holds[key]
	if !ok {
		hold = l.hold
	}
	l.held.KeyDown(key)
	l.expires[key] = now.Add(hold)
}

// Expire отпускает клавиши, чьё удержание истекло к моменту now.
func (l *Latch) Expire(now time.Time) {
	for key, deadline := range l.expires {
		if !now.Before(deadline) {
			l.held.KeyUp(key)
			delete(l.expires, key)
		}
	}
}
