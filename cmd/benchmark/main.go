package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/welf/reactive-signals/signals"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	runGrid(10, 10, nil)

	tbl := table.NewWriter()
	tbl.SetTitle("Reactive Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			sum := runGrid(w, h, tach)

			// identical construction plus identical writes must observe an
			// identical value stream
			again := runGrid(w, h, nil)
			if sum != again {
				log.Fatalf("propagate %dx%d: checksum mismatch %x != %x", w, h, sum, again)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", sum),
				},
			})
		}
	}

	tbl.Render()
}

func getValue(x any) int {
	switch x := x.(type) {
	case *signals.WriteableSignal[int]:
		return x.Value() + 1
	case *signals.ReadonlySignal[int]:
		return x.Value() + 1
	default:
		panic("unknown cell type")
	}
}

// runGrid builds w computed chains of depth h over one source signal, caps
// each chain with an effect, then times iters writes to the source. The
// returned digest covers every value the effects observed, in order.
func runGrid(w, h int, tach *tachymeter.Tachymeter) uint64 {
	rs := signals.CreateReactiveSystem(func(from signals.SignalAware, err error) {
		log.Panic(err)
	})

	digest := xxhash.New()
	var scratch [8]byte
	observe := func(v int) {
		binary.BigEndian.PutUint64(scratch[:], uint64(v))
		digest.Write(scratch[:])
	}

	src := signals.Signal(rs, 1)
	for i := 0; i < w; i++ {
		var last any
		last = src
		for j := 0; j < h; j++ {
			prev := last
			last = signals.Computed(rs, func() (int, error) {
				return getValue(prev), nil
			})
		}

		tail := last
		signals.Effect(rs, func() error {
			observe(getValue(tail))
			return nil
		})
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		src.SetValue(src.Value() + 1)
		if tach != nil {
			tach.AddTime(time.Since(start))
		}
	}

	return digest.Sum64()
}
