package hal

import (
	"math"
	"sync/atomic"
)

// EncoderEventKind tells rotation from button changes.
type EncoderEventKind uint8

const (
	EncoderRotate EncoderEventKind = iota + 1
	EncoderButton
)

// EncoderEvent is one change reported by a host input backend.
type EncoderEvent struct {
	Kind  EncoderEventKind
	Delta int8 // detents, for EncoderRotate
	Down  bool // button state, for EncoderButton
}

const eventSlots = 32

// eventQueue is a fixed-size single-producer, single-consumer ring. The input
// backend produces and the control loop consumes, without locks or
// allocation.
type eventQueue struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [eventSlots]EncoderEvent
}

// TrySend enqueues ev, returning false if the queue is full.
func (q *eventQueue) TrySend(ev EncoderEvent) bool {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= eventSlots {
		return false
	}
	q.slots[head%eventSlots] = ev
	q.head.Store(head + 1)
	return true
}

// TryRecv dequeues one event, returning false if empty.
func (q *eventQueue) TryRecv() (EncoderEvent, bool) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		return EncoderEvent{}, false
	}
	ev := q.slots[tail%eventSlots]
	q.tail.Store(tail + 1)
	return ev, true
}

// VirtualEncoder is an Encoder driven by host key presses.
//
// Rotate and Button are called by the input backend; Poll, Position and
// Pressed by the control loop. Poll applies queued events up to and including
// the first button change, so a press and release that arrive within one
// frame are still seen as two readings.
type VirtualEncoder struct {
	q        eventQueue
	position int
	pressed  bool
}

// Rotate queues delta detents, split into as many events as an int8 delta
// needs. It reports false when the queue filled up and detents were dropped.
func (e *VirtualEncoder) Rotate(delta int) bool {
	for delta != 0 {
		part := max(min(delta, math.MaxInt8), -math.MaxInt8)
		if !e.q.TrySend(EncoderEvent{Kind: EncoderRotate, Delta: int8(part)}) {
			return false
		}
		delta -= part
	}
	return true
}

// Button queues a button change.
func (e *VirtualEncoder) Button(down bool) bool {
	return e.q.TrySend(EncoderEvent{Kind: EncoderButton, Down: down})
}

// Click queues a press followed by a release.
func (e *VirtualEncoder) Click() bool {
	return e.Button(true) && e.Button(false)
}

// Poll applies pending events.
func (e *VirtualEncoder) Poll() {
	for {
		ev, ok := e.q.TryRecv()
		if !ok {
			return
		}
		switch ev.Kind {
		case EncoderRotate:
			e.position += int(ev.Delta)
		case EncoderButton:
			changed := e.pressed != ev.Down
			e.pressed = ev.Down
			if changed {
				return
			}
		}
	}
}

func (e *VirtualEncoder) Position() int { return e.position }
func (e *VirtualEncoder) Pressed() bool { return e.pressed }
