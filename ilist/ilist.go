// Package ilist is a generic intrusive doubly linked list.
//
// List membership lives inside the entity: a struct embeds one Element per list
// it takes part in, and a Tag type tells the list which of those elements to use.
// Inserting, erasing and splicing never allocate.
//
//	type item struct {
//		id   int
//		byID ilist.Element[item, byID]
//	}
//
//	type byID struct{}
//
//	func (byID) Element(it *item) *ilist.Element[item, byID] { return &it.byID }
//
//	var l ilist.List[item, byID]
//	l.PushBack(&item{id: 1})
//
// The list does not own its entities. Entities must be unlinked by their owner
// before they are dropped, since Go has no destructor that could do it for them.
// Neither List nor Element is safe for concurrent use.
package ilist

import "iter"

// Mapper selects the Element embedded in T that lists tagged with Tag use.
type Mapper[T any, Tag any] interface {
	Element(*T) *Element[T, Tag]
}

// Element is the link embedded in entities. The zero value is unlinked.
type Element[T any, Tag any] struct {
	next, prev *Element[T, Tag]
	value      *T
}

// IsLinked reports whether e is currently a member of a list.
func (e *Element[T, Tag]) IsLinked() bool {
	return e.next != nil
}

// Unlink removes e from whatever list holds it. Unlinking an unlinked element is
// a no-op.
func (e *Element[T, Tag]) Unlink() {
	if e.next == nil {
		return
	}
	e.next.prev = e.prev
	e.prev.next = e.next
	e.next, e.prev, e.value = nil, nil, nil
}

func (e *Element[T, Tag]) linkBefore(pos *Element[T, Tag], v *T) {
	e.value = v
	e.next = pos
	e.prev = pos.prev
	pos.prev.next = e
	pos.prev = e
}

// Iterator is a bidirectional position in a List. Iterators compare with ==.
// An iterator stays valid while other elements are inserted or erased; one
// pointing at an erased element is invalid.
type Iterator[T any, Tag any] struct {
	cur *Element[T, Tag]
}

// Value returns the entity at it, or nil for End.
func (it Iterator[T, Tag]) Value() *T {
	return it.cur.value
}

func (it Iterator[T, Tag]) Next() Iterator[T, Tag] {
	return Iterator[T, Tag]{cur: it.cur.next}
}

func (it Iterator[T, Tag]) Prev() Iterator[T, Tag] {
	return Iterator[T, Tag]{cur: it.cur.prev}
}

// List is a circular doubly linked list threaded through a sentinel element.
// The zero value is an empty list. A List must not be copied after first use;
// use Take to move its contents.
type List[T any, Tag Mapper[T, Tag]] struct {
	_    noCopy
	root Element[T, Tag]
}

func (l *List[T, Tag]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

func (l *List[T, Tag]) elem(v *T) *Element[T, Tag] {
	var tag Tag
	return tag.Element(v)
}

func (l *List[T, Tag]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len walks the list, it is O(n).
func (l *List[T, Tag]) Len() int {
	n := 0
	for it, end := l.Begin(), l.End(); it != end; it = it.Next() {
		n++
	}
	return n
}

func (l *List[T, Tag]) Begin() Iterator[T, Tag] {
	l.lazyInit()
	return Iterator[T, Tag]{cur: l.root.next}
}

func (l *List[T, Tag]) End() Iterator[T, Tag] {
	l.lazyInit()
	return Iterator[T, Tag]{cur: &l.root}
}

// Front returns the first entity or nil.
func (l *List[T, Tag]) Front() *T {
	if l.Empty() {
		return nil
	}
	return l.root.next.value
}

// Back returns the last entity or nil.
func (l *List[T, Tag]) Back() *T {
	if l.Empty() {
		return nil
	}
	return l.root.prev.value
}

// PushFront links v at the front. v must not already be linked under Tag.
func (l *List[T, Tag]) PushFront(v *T) {
	l.lazyInit()
	l.elem(v).linkBefore(l.root.next, v)
}

// PushBack links v at the back. v must not already be linked under Tag.
func (l *List[T, Tag]) PushBack(v *T) {
	l.lazyInit()
	l.elem(v).linkBefore(&l.root, v)
}

// PopFront unlinks and returns the first entity, or nil if l is empty.
func (l *List[T, Tag]) PopFront() *T {
	if l.Empty() {
		return nil
	}
	e := l.root.next
	v := e.value
	e.Unlink()
	return v
}

// PopBack unlinks and returns the last entity, or nil if l is empty.
func (l *List[T, Tag]) PopBack() *T {
	if l.Empty() {
		return nil
	}
	e := l.root.prev
	v := e.value
	e.Unlink()
	return v
}

// Insert links v immediately before pos and returns its iterator.
func (l *List[T, Tag]) Insert(pos Iterator[T, Tag], v *T) Iterator[T, Tag] {
	e := l.elem(v)
	e.linkBefore(pos.cur, v)
	return Iterator[T, Tag]{cur: e}
}

// Erase unlinks the entity at pos and returns the iterator following it. The
// entity itself is left to its owner.
func (l *List[T, Tag]) Erase(pos Iterator[T, Tag]) Iterator[T, Tag] {
	next := pos.cur.next
	pos.cur.Unlink()
	return Iterator[T, Tag]{cur: next}
}

// Splice moves the range [first, last) of other in front of pos. Only pointers
// change hands. other may be l itself as long as pos is outside the range.
func (l *List[T, Tag]) Splice(pos Iterator[T, Tag], other *List[T, Tag], first, last Iterator[T, Tag]) {
	if first == last {
		return
	}
	p, f, e := pos.cur, first.cur, last.cur
	tail := e.prev

	f.prev.next = e
	e.prev = f.prev

	f.prev = p.prev
	tail.next = p
	p.prev.next = f
	p.prev = tail
}

// AsIterator returns the position of a linked entity.
func (l *List[T, Tag]) AsIterator(v *T) Iterator[T, Tag] {
	return Iterator[T, Tag]{cur: l.elem(v)}
}

// Take moves every entity of other into l, replacing whatever l held. other is
// left empty.
func (l *List[T, Tag]) Take(other *List[T, Tag]) {
	if l == other {
		return
	}
	l.Clear()
	if other.Empty() {
		return
	}
	l.Splice(l.End(), other, other.Begin(), other.End())
}

// Clear unlinks every entity.
func (l *List[T, Tag]) Clear() {
	for !l.Empty() {
		l.root.prev.Unlink()
	}
}

// All yields entities front to back. The yielded entity may be unlinked by the
// loop body.
func (l *List[T, Tag]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		end := l.End()
		for it := l.Begin(); it != end; {
			v := it.Value()
			it = it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields entities back to front. The yielded entity may be unlinked by
// the loop body.
func (l *List[T, Tag]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		end := l.End()
		for it := end.Prev(); it != end; {
			v := it.Value()
			it = it.Prev()
			if !yield(v) {
				return
			}
		}
	}
}

// noCopy lets go vet's copylocks check flag copied lists.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
