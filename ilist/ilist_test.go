package ilist_test

import (
	"math/rand"
	"slices"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/turnsignal/ilist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    int
	byAge ilist.Element[item, byAge]
	byJob ilist.Element[item, byJob]
}

type byAge struct{}

func (byAge) Element(it *item) *ilist.Element[item, byAge] { return &it.byAge }

type byJob struct{}

func (byJob) Element(it *item) *ilist.Element[item, byJob] { return &it.byJob }

type ageList = ilist.List[item, byAge]

func items(n int) []*item {
	out := make([]*item, n)
	for i := range out {
		out[i] = &item{id: i}
	}
	return out
}

func forward(l *ageList) []int {
	var ids []int
	for it := range l.All() {
		ids = append(ids, it.id)
	}
	return ids
}

func backward(l *ageList) []int {
	var ids []int
	for it := range l.Backward() {
		ids = append(ids, it.id)
	}
	return ids
}

// forward traversal must equal reversed backward traversal, and both must visit
// exactly the linked set
func requireConsistent(t *testing.T, l *ageList, linked mapset.Set[int]) {
	t.Helper()

	fw, bw := forward(l), backward(l)
	slices.Reverse(bw)
	require.Equal(t, fw, bw)
	require.True(t, linked.Equal(mapset.NewThreadUnsafeSet(fw...)), "linked %v, walked %v", linked, fw)
	require.Equal(t, linked.Cardinality(), len(fw))
	require.Equal(t, l.Empty(), l.Begin() == l.End())
	require.Equal(t, len(fw), l.Len())
}

func TestZeroValueIsEmpty(t *testing.T) {
	var l ageList
	assert.True(t, l.Empty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
	assert.Nil(t, l.PopFront())
	assert.Nil(t, l.PopBack())
	assert.Equal(t, l.Begin(), l.End())
	assert.Nil(t, l.End().Value())
	assert.Zero(t, l.Len())
}

func TestPushPop(t *testing.T) {
	var l ageList
	xs := items(4)

	l.PushBack(xs[1])
	l.PushBack(xs[2])
	l.PushFront(xs[0])
	l.PushBack(xs[3])
	assert.Equal(t, []int{0, 1, 2, 3}, forward(&l))
	assert.Equal(t, xs[0], l.Front())
	assert.Equal(t, xs[3], l.Back())

	assert.Equal(t, xs[0], l.PopFront())
	assert.Equal(t, xs[3], l.PopBack())
	assert.False(t, xs[0].byAge.IsLinked())
	assert.False(t, xs[3].byAge.IsLinked())
	assert.Equal(t, []int{1, 2}, forward(&l))

	// popped entities can be linked again
	l.PushFront(xs[3])
	assert.Equal(t, []int{3, 1, 2}, forward(&l))
}

func TestInsertErase(t *testing.T) {
	var l ageList
	xs := items(5)
	for _, x := range xs[:3] {
		l.PushBack(x)
	}

	pos := l.AsIterator(xs[1])
	inserted := l.Insert(pos, xs[3])
	assert.Equal(t, xs[3], inserted.Value())
	assert.Equal(t, []int{0, 3, 1, 2}, forward(&l))

	l.Insert(l.End(), xs[4])
	assert.Equal(t, []int{0, 3, 1, 2, 4}, forward(&l))

	next := l.Erase(l.AsIterator(xs[1]))
	assert.Equal(t, xs[2], next.Value())
	assert.False(t, xs[1].byAge.IsLinked())
	assert.Equal(t, []int{0, 3, 2, 4}, forward(&l))

	next = l.Erase(l.AsIterator(xs[4]))
	assert.Equal(t, l.End(), next)
}

func TestIteratorSurvivesOtherEdits(t *testing.T) {
	var l ageList
	xs := items(4)
	for _, x := range xs {
		l.PushBack(x)
	}

	it := l.AsIterator(xs[2])
	l.Erase(l.AsIterator(xs[1]))
	l.Erase(l.AsIterator(xs[3]))
	l.PushFront(xs[1])

	assert.Equal(t, xs[2], it.Value())
	assert.Equal(t, xs[0], it.Prev().Value())
	assert.Equal(t, l.End(), it.Next())
}

func TestUnlinkIsIdempotent(t *testing.T) {
	var l ageList
	x := &item{}
	x.byAge.Unlink()
	l.PushBack(x)
	x.byAge.Unlink()
	x.byAge.Unlink()
	assert.True(t, l.Empty())
}

func TestSplice(t *testing.T) {
	var a, b ageList
	xs := items(6)
	for _, x := range xs[:3] {
		a.PushBack(x)
	}
	for _, x := range xs[3:] {
		b.PushBack(x)
	}

	// move [4, 5] of b in front of 1 in a
	a.Splice(a.AsIterator(xs[1]), &b, b.AsIterator(xs[4]), b.End())
	assert.Equal(t, []int{0, 4, 5, 1, 2}, forward(&a))
	assert.Equal(t, []int{3}, forward(&b))

	// empty range is a no-op
	a.Splice(a.Begin(), &b, b.Begin(), b.Begin())
	assert.Equal(t, []int{0, 4, 5, 1, 2}, forward(&a))

	// within the same list
	a.Splice(a.End(), &a, a.Begin(), a.AsIterator(xs[5]))
	assert.Equal(t, []int{5, 1, 2, 0, 4}, forward(&a))
}

func TestTake(t *testing.T) {
	var a, b ageList
	xs := items(4)
	a.PushBack(xs[0])
	b.PushBack(xs[1])
	b.PushBack(xs[2])

	a.Take(&b)
	assert.Equal(t, []int{1, 2}, forward(&a))
	assert.True(t, b.Empty())
	assert.False(t, xs[0].byAge.IsLinked())

	// taking from an empty list empties the receiver
	a.Take(&b)
	assert.True(t, a.Empty())
	assert.False(t, xs[1].byAge.IsLinked())

	b.PushBack(xs[3])
	b.Take(&b)
	assert.Equal(t, []int{3}, backward(&b))
}

func TestClear(t *testing.T) {
	var l ageList
	xs := items(3)
	for _, x := range xs {
		l.PushBack(x)
	}
	l.Clear()
	assert.True(t, l.Empty())
	for _, x := range xs {
		assert.False(t, x.byAge.IsLinked())
	}
}

func TestRemoveWhileRanging(t *testing.T) {
	var l ageList
	xs := items(5)
	for _, x := range xs {
		l.PushBack(x)
	}
	for x := range l.All() {
		if x.id%2 == 0 {
			x.byAge.Unlink()
		}
	}
	assert.Equal(t, []int{1, 3}, forward(&l))

	for x := range l.Backward() {
		x.byAge.Unlink()
		break
	}
	assert.Equal(t, []int{1}, forward(&l))
}

// one entity can live in independent lists at once
func TestMultipleTags(t *testing.T) {
	var ages ageList
	var jobs ilist.List[item, byJob]
	xs := items(3)
	for _, x := range xs {
		ages.PushBack(x)
		jobs.PushFront(x)
	}

	xs[1].byAge.Unlink()
	assert.Equal(t, []int{0, 2}, forward(&ages))

	var jobIDs []int
	for x := range jobs.All() {
		jobIDs = append(jobIDs, x.id)
	}
	assert.Equal(t, []int{2, 1, 0}, jobIDs)
}

func TestRandomOperationsKeepIntegrity(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	var a, b ageList
	xs := items(32)
	inA := mapset.NewThreadUnsafeSet[int]()
	inB := mapset.NewThreadUnsafeSet[int]()

	randomLinked := func(l *ageList) *item {
		ids := forward(l)
		if len(ids) == 0 {
			return nil
		}
		return xs[ids[rnd.Intn(len(ids))]]
	}

	for step := 0; step < 2000; step++ {
		x := xs[rnd.Intn(len(xs))]
		linked := x.byAge.IsLinked()

		switch op := rnd.Intn(7); {
		case op == 0 && !linked:
			a.PushFront(x)
			inA.Add(x.id)
		case op == 1 && !linked:
			a.PushBack(x)
			inA.Add(x.id)
		case op == 2 && !linked:
			if at := randomLinked(&a); at != nil {
				a.Insert(a.AsIterator(at), x)
			} else {
				a.Insert(a.End(), x)
			}
			inA.Add(x.id)
		case op == 3:
			if v := a.PopFront(); v != nil {
				inA.Remove(v.id)
			}
		case op == 4:
			if v := a.PopBack(); v != nil {
				inA.Remove(v.id)
			}
		case op == 5 && !linked:
			b.PushBack(x)
			inB.Add(x.id)
		case op == 6:
			// splice the tail of b, from a random element, to the front of a
			if from := randomLinked(&b); from != nil {
				first := b.AsIterator(from)
				for it := first; it != b.End(); it = it.Next() {
					inB.Remove(it.Value().id)
					inA.Add(it.Value().id)
				}
				a.Splice(a.Begin(), &b, first, b.End())
			}
		case linked:
			if inA.Contains(x.id) {
				a.Erase(a.AsIterator(x))
				inA.Remove(x.id)
			} else {
				b.Erase(b.AsIterator(x))
				inB.Remove(x.id)
			}
		}

		requireConsistent(t, &a, inA)
		requireConsistent(t, &b, inB)
	}
}
