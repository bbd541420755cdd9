package native

import (
	"reflect"
	"runtime"

	"github.com/ebitengine/purego"
)

// Bool is the 32-bit boolean of the native ABI.
type Bool int32

func NewBool(value bool) Bool {
	if value {
		return 1
	}
	return 0
}

func (b Bool) Value() bool {
	return b != 0
}

// Pinned keeps a slice in place while native code reads or writes it.
type Pinned[T any] struct {
	data   []T
	pinner runtime.Pinner
}

func Pin[T any](data []T) *Pinned[T] {
	pinned := &Pinned[T]{data: data}
	if len(data) > 0 {
		pinned.pinner.Pin(&data[0])
	}
	return pinned
}

// Pointer is nil for an empty slice.
func (p *Pinned[T]) Pointer() *T {
	if len(p.data) == 0 {
		return nil
	}
	return &p.data[0]
}

func (p *Pinned[T]) Unpin() {
	p.pinner.Unpin()
}

// NewCallback returns a native function pointer calling fn. A nil fn yields a
// null pointer. Callbacks are never released, so they should be created once
// and reused.
func NewCallback(fn any) uintptr {
	if fn == nil {
		return 0
	}
	if v := reflect.ValueOf(fn); v.Kind() == reflect.Func && v.IsNil() {
		return 0
	}

	return purego.NewCallback(fn)
}
