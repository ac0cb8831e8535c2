package signals

import "github.com/delaneyj/turnsignal/ilist"

// Connection is the handle of one subscription. It is only ever used through a
// pointer; the zero value is a disconnected handle that MoveFrom can fill.
//
// Go cannot disconnect a dropped handle on its own, a linked connection stays
// reachable from its signal. Call Disconnect when the subscription ends.
type Connection[F any] struct {
	link ilist.Element[Connection[F], connTag[F]]
	sig  *Signal[F]
	slot F
}

func (c *Connection[F]) Connected() bool {
	return c.link.IsLinked()
}

// Disconnect removes the subscription and drops the slot. Emissions currently
// resting on c move on to its successor. Disconnecting twice is harmless.
func (c *Connection[F]) Disconnect() {
	if !c.link.IsLinked() {
		return
	}

	s := c.sig
	self := s.conns.AsIterator(c)
	s.repoint(self, self.Next())
	c.link.Unlink()

	var zero F
	c.slot = zero
	c.sig = nil
}

// MoveFrom disconnects c, then takes over other's slot and its exact place in
// the signal. Emissions resting on other continue from c. other is left
// disconnected.
func (c *Connection[F]) MoveFrom(other *Connection[F]) {
	if c == other {
		return
	}
	c.Disconnect()
	if !other.link.IsLinked() {
		return
	}

	s := other.sig
	from := s.conns.AsIterator(other)
	to := s.conns.Insert(from, c)
	c.sig, c.slot = s, other.slot
	s.repoint(from, to)

	var zero F
	other.link.Unlink()
	other.slot = zero
	other.sig = nil
}

// Move returns a new handle that took over c.
func (c *Connection[F]) Move() *Connection[F] {
	moved := &Connection[F]{}
	moved.MoveFrom(c)
	return moved
}
