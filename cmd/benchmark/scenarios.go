package main

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/turnsignal/signals"
	"github.com/jamiealquiza/tachymeter"
)

var widths = []int{1, 10, 100, 1_000}

type conn = signals.Connection[func(int) error]

// probe fingerprints the order slots run in.
type probe struct {
	digest *xxhash.Digest
	calls  int64
	buf    [16]byte
}

func newProbe() *probe {
	return &probe{digest: xxhash.New()}
}

func (p *probe) record(id, depth int) {
	binary.LittleEndian.PutUint64(p.buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(p.buf[8:], uint64(depth))
	p.digest.Write(p.buf[:])
	p.calls++
}

// scenario wires width connections to s, reporting every slot run to p.
type scenario struct {
	name  string
	setup func(s *signals.Signal1[int], width int, p *probe)
}

var scenarios = []scenario{
	{
		name: "emit",
		setup: func(s *signals.Signal1[int], width int, p *probe) {
			for i := 0; i < width; i++ {
				id := i
				s.Connect(func(depth int) error {
					p.record(id, depth)
					return nil
				})
			}
		},
	},
	{
		// every slot drops its own connection and subscribes again at the front
		name: "self-disconnect",
		setup: func(s *signals.Signal1[int], width int, p *probe) {
			var subscribe func(id int)
			subscribe = func(id int) {
				var c *conn
				c = s.Connect(func(depth int) error {
					p.record(id, depth)
					c.Disconnect()
					subscribe(id)
					return nil
				})
			}
			for i := 0; i < width; i++ {
				subscribe(i)
			}
		},
	},
	{
		// the newest slot emits once more from inside the emission
		name: "nested",
		setup: func(s *signals.Signal1[int], width int, p *probe) {
			for i := 0; i < width; i++ {
				id := i
				nest := i == width-1
				s.Connect(func(depth int) error {
					p.record(id, depth)
					if nest && depth == 0 {
						return s.Emit(depth + 1)
					}
					return nil
				})
			}
		},
	},
	{
		// every slot moves the connection due next to a fresh handle
		name: "move-next",
		setup: func(s *signals.Signal1[int], width int, p *probe) {
			conns := make([]*conn, width)
			for i := 0; i < width; i++ {
				id := i
				conns[i] = s.Connect(func(depth int) error {
					p.record(id, depth)
					if id > 0 {
						conns[id-1] = conns[id-1].Move()
					}
					return nil
				})
			}
		},
	},
}

type result struct {
	scenario    string
	width       int
	metrics     *tachymeter.Metrics
	callsPerSec float64
	fingerprint uint64
	stable      bool
}

// measure times iters emissions of a fresh signal, then replays them untimed on
// a second signal to check both produced the same slot order.
func measure(sc scenario, width, iters int) (*result, error) {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	var timed signals.Signal1[int]
	defer timed.Close()
	p := newProbe()
	sc.setup(&timed, width, p)

	var total time.Duration
	for i := 0; i < iters; i++ {
		start := time.Now()
		if err := timed.Emit(0); err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		total += elapsed
		tach.AddTime(elapsed)
	}

	var replay signals.Signal1[int]
	defer replay.Close()
	q := newProbe()
	sc.setup(&replay, width, q)
	for i := 0; i < iters; i++ {
		if err := replay.Emit(0); err != nil {
			return nil, err
		}
	}

	if left := timed.Len(); left != width {
		return nil, fmt.Errorf("expected %d connections after the run, found %d", width, left)
	}

	res := &result{
		scenario:    sc.name,
		width:       width,
		metrics:     tach.Calc(),
		fingerprint: p.digest.Sum64(),
		stable:      p.digest.Sum64() == q.digest.Sum64() && p.calls == q.calls,
	}
	if total > 0 {
		res.callsPerSec = float64(p.calls) / total.Seconds()
	}
	return res, nil
}
