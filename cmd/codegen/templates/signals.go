package templates

import (
	"io"

	qt "github.com/valyala/quicktemplate"
)

// SignalsGen renders the typed Signal0..SignalN wrappers of package signals.
func SignalsGen(maxArity int) string {
	bb := qt.AcquireByteBuffer()
	WriteSignalsGen(bb, maxArity)
	s := string(bb.B)
	qt.ReleaseByteBuffer(bb)
	return s
}

func WriteSignalsGen(w io.Writer, maxArity int) {
	qw := qt.AcquireWriter(w)
	StreamSignalsGen(qw, maxArity)
	qt.ReleaseWriter(qw)
}

func StreamSignalsGen(qw *qt.Writer, maxArity int) {
	qw.N().S("// Code generated by cmd/codegen. DO NOT EDIT.\n\npackage signals\n")
	for arity := 0; arity <= maxArity; arity++ {
		streamSignal(qw, arity)
	}
}

func streamSignal(qw *qt.Writer, arity int) {
	name := "Signal"
	typeArgs := ""
	typeParams := ""
	if arity > 0 {
		typeArgs = "[" + prefixedStrings("A", arity) + "]"
		typeParams = "[" + prefixedStrings("A", arity) + " any]"
	}
	slotType := "func(" + prefixedStrings("A", arity) + ") error"

	w := qw.N()
	w.S("\n// ")
	w.S(name)
	w.D(arity)
	w.S(" is a Signal whose slots take ")
	w.S(arityNoun(arity))
	w.S(".\ntype ")
	w.S(name)
	w.D(arity)
	w.S(typeParams)
	w.S(" struct {\n\tSignal[")
	w.S(slotType)
	w.S("]\n}\n\n// Emit calls every connected slot")
	if arity > 0 {
		w.S(" with the given arguments")
	}
	w.S(", see EmitWith.\nfunc (s *")
	w.S(name)
	w.D(arity)
	w.S(typeArgs)
	w.S(") Emit(")
	w.S(pairedStrings("a", "A", arity))
	w.S(") error {\n\treturn s.EmitWith(func(slot ")
	w.S(slotType)
	w.S(") error {\n\t\treturn slot(")
	w.S(prefixedStrings("a", arity))
	w.S(")\n\t})\n}\n")
}
