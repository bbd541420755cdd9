package native

import (
	"sync"

	"magickgen/internal"

	"github.com/ebitengine/purego"
)

// Proc is a lazily bound native entry point. F is the Go function type the
// entry point is called through.
type Proc[F any] struct {
	library *Library
	name    string

	once sync.Once
	fn   F
	err  error
}

func NewProc[F any](library *Library, name string) *Proc[F] {
	return &Proc[F]{library: library, name: name}
}

func (proc *Proc[F]) Name() string {
	return proc.name
}

// Bind resolves the entry point on first use.
func (proc *Proc[F]) Bind() (F, error) {
	proc.once.Do(func() {
		address, err := proc.library.Symbol(proc.name)
		if err != nil {
			proc.err = err
			return
		}
		purego.RegisterFunc(&proc.fn, address)
	})

	return proc.fn, proc.err
}

// Get returns the bound entry point. A library without the entry point cannot
// be used at all, so failing to bind panics.
func (proc *Proc[F]) Get() F {
	fn, err := proc.Bind()
	internal.PanicOnError(err)
	return fn
}
