package templates

import (
	"strconv"
	"strings"

	qt "github.com/valyala/quicktemplate"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// TypedGen renders the source of the signals/typed package with fixed-arity
// adapters up to the given count.
func TypedGen(count int) string {
	bb := qt.AcquireByteBuffer()
	defer qt.ReleaseByteBuffer(bb)

	w := qt.AcquireWriter(bb)
	wn := w.N()

	wn.S(`// Code generated by cmd/codegen. DO NOT EDIT.

package typed

import (
	"github.com/welf/reactive-signals/signals"
)

// Readable is any cell whose current value can be read with dependency
// tracking; both WriteableSignal and ReadonlySignal satisfy it.
type Readable[T comparable] interface {
	Value() T
}
`)

	for n := 1; n <= count; n++ {
		writeComputed(wn, n)
		writeEffect(wn, n)
	}

	qt.ReleaseWriter(w)
	return string(bb.B)
}

func writeComputed(wn *qt.QWriter, n int) {
	wn.S("\nfunc Computed")
	wn.D(n)
	wn.S("[")
	wn.S(prefixedStrings("T", n))
	wn.S(", O comparable](\n\trs *signals.ReactiveSystem,\n")
	writeDepParams(wn, n)
	wn.S("\tfn func(")
	wn.S(prefixedStrings("T", n))
	wn.S(") O,\n) *signals.ReadonlySignal[O] {\n\treturn signals.Computed(rs, func() (O, error) {\n\t\treturn fn(\n")
	writeDepReads(wn, n)
	wn.S("\t\t), nil\n\t})\n}\n")
}

func writeEffect(wn *qt.QWriter, n int) {
	wn.S("\nfunc Effect")
	wn.D(n)
	wn.S("[")
	wn.S(prefixedStrings("T", n))
	wn.S(" comparable](\n\trs *signals.ReactiveSystem,\n")
	writeDepParams(wn, n)
	wn.S("\tfn func(")
	wn.S(prefixedStrings("T", n))
	wn.S(") error,\n) (stop func()) {\n\treturn signals.Effect(rs, func() error {\n\t\treturn fn(\n")
	writeDepReads(wn, n)
	wn.S("\t\t)\n\t})\n}\n")
}

func writeDepParams(wn *qt.QWriter, n int) {
	for i := 0; i < n; i++ {
		wn.S("\tdep")
		wn.D(i)
		wn.S(" Readable[T")
		wn.D(i)
		wn.S("],\n")
	}
}

func writeDepReads(wn *qt.QWriter, n int) {
	for i := 0; i < n; i++ {
		wn.S("\t\t\tdep")
		wn.D(i)
		wn.S(".Value(),\n")
	}
}
