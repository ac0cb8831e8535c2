// Package signals implements single-threaded signals and slots on top of an
// intrusive list.
//
// A Signal holds connections, each owning one slot. Emitting the signal calls
// every connected slot in list order. Slots are free to disconnect any
// connection, move connections to new handles, close the signal or emit it again
// while an emission is running: every in-flight emission keeps a cursor that is
// registered with the signal and repaired whenever the list changes under it.
//
// Connect links new connections at the front, so slots run newest first. Use
// ConnectBack for subscription order.
//
// Nothing here is safe for concurrent use. Sharing a signal or its connections
// between goroutines without external synchronization is undefined behaviour.
package signals

import "github.com/delaneyj/turnsignal/ilist"

type connTag[F any] struct{}

func (connTag[F]) Element(c *Connection[F]) *ilist.Element[Connection[F], connTag[F]] {
	return &c.link
}

// Signal is the emitter. F is the slot type, usually a func returning error; the
// generated Signal0..SignalN types fix F and add a typed Emit.
//
// The zero value is a signal with no connections. A Signal must not be copied
// after first use.
type Signal[F any] struct {
	conns ilist.List[Connection[F], connTag[F]]
	top   *token[F]
}

// token is the traversal state of one running emission. Tokens of nested
// emissions form a stack through next, innermost on top.
type token[F any] struct {
	cur  ilist.Iterator[Connection[F], connTag[F]]
	next *token[F]
	sig  *Signal[F] // nil once the signal was closed
}

func (tok *token[F]) release() {
	if tok.sig != nil {
		tok.sig.top = tok.next
	}
}

// Connect subscribes slot at the front of the signal.
func (s *Signal[F]) Connect(slot F) *Connection[F] {
	c := &Connection[F]{sig: s, slot: slot}
	s.conns.PushFront(c)
	return c
}

// ConnectBack subscribes slot at the back of the signal, after every existing
// connection.
func (s *Signal[F]) ConnectBack(slot F) *Connection[F] {
	c := &Connection[F]{sig: s, slot: slot}
	s.conns.PushBack(c)
	return c
}

func (s *Signal[F]) Len() int {
	return s.conns.Len()
}

func (s *Signal[F]) Empty() bool {
	return s.conns.Empty()
}

// EmitWith walks the connections and hands each slot to invoke. It stops at the
// first error, which is returned as is, and stops early without error when a
// slot closes the signal. Panics propagate after the emission is unregistered.
func (s *Signal[F]) EmitWith(invoke func(F) error) error {
	tok := &token[F]{cur: s.conns.Begin(), next: s.top, sig: s}
	s.top = tok
	defer tok.release()

	end := s.conns.End()
	for tok.cur != end {
		c := tok.cur.Value()
		tok.cur = tok.cur.Next()

		if err := invoke(c.slot); err != nil {
			return err
		}
		if tok.sig == nil {
			return nil
		}
	}
	return nil
}

// Close disconnects every connection and stops every emission in flight once
// its current slot returns. Handles held by callers report themselves as
// disconnected. The signal can be connected to again afterwards.
func (s *Signal[F]) Close() {
	for tok := s.top; tok != nil; tok = tok.next {
		tok.sig = nil
	}
	s.top = nil

	var zero F
	for c := s.conns.PopFront(); c != nil; c = s.conns.PopFront() {
		c.slot = zero
		c.sig = nil
	}
}

// repoint moves every cursor resting on from to to.
func (s *Signal[F]) repoint(from, to ilist.Iterator[Connection[F], connTag[F]]) {
	for tok := s.top; tok != nil; tok = tok.next {
		if tok.cur == from {
			tok.cur = to
		}
	}
}
