package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcher_DeliversByType(t *testing.T) {
	d := NewDispatcher()
	overs := &recorder{}
	shots := &recorder{}
	d.Subscribe(overs, MatchOver)
	d.Subscribe(shots, ShotFired, BlastExpired)

	d.Dispatch(Event{Type: ShotFired, Data: Shot{Blast: 3}})
	d.Dispatch(Event{Type: MatchReset})
	d.Dispatch(Event{Type: BlastExpired})

	assert.Empty(t, overs.got)
	assert.Equal(t, []Event{
		{Type: ShotFired, Data: Shot{Blast: 3}},
		{Type: BlastExpired},
	}, shots.got)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(a, MatchOver)
	d.Subscribe(b, MatchOver)
	d.Unsubscribe(MatchOver, a)

	d.Dispatch(Event{Type: MatchOver})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

type chain struct {
	d   *Dispatcher
	got []EventType
}

func (c *chain) OnEvent(e Event) {
	c.got = append(c.got, e.Type)
	if e.Type == BlastContact {
		c.d.Queue(Event{Type: MatchOver})
	}
}

func TestDispatcher_QueueFlush(t *testing.T) {
	d := NewDispatcher()
	c := &chain{d: d}
	d.Subscribe(c, BlastContact, MatchOver)

	d.Queue(Event{Type: BlastContact})
	assert.Empty(t, c.got, "queued events wait for Flush")

	d.Flush()
	assert.Equal(t, []EventType{BlastContact, MatchOver}, c.got)

	d.Queue(Event{Type: BlastContact})
	d.Drop()
	d.Flush()
	assert.Len(t, c.got, 2)
}
