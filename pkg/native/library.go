package native

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/tliron/commonlog"
)

// SearchPathVariable names the environment variable holding the directory the
// native libraries are loaded from. When unset the loader of the operating
// system searches its default locations.
const SearchPathVariable = "MAGICK_NATIVE_PATH"

var ErrNoLibrary = errors.New("no native library for this architecture")

var log = commonlog.GetLogger("magickgen.native")

var (
	librariesLock sync.RWMutex
	libraries     = make(map[Arch]*Library)
)

// Library is one native library build. It is loaded on first use.
type Library struct {
	Arch Arch
	Name string

	once   sync.Once
	handle uintptr
	err    error
}

// NewLibrary declares the library of one architecture. Generated code calls it
// once per architecture from package initialization; a later declaration for
// the same architecture replaces the earlier one.
func NewLibrary(arch Arch, name string) *Library {
	library := &Library{Arch: arch, Name: name}

	librariesLock.Lock()
	libraries[arch] = library
	librariesLock.Unlock()

	return library
}

// Current returns the library declared for the running architecture.
func Current() (*Library, error) {
	librariesLock.RLock()
	defer librariesLock.RUnlock()

	library, found := libraries[CurrentArch()]
	if !found {
		return nil, fmt.Errorf("%s: %w", CurrentArch(), ErrNoLibrary)
	}
	return library, nil
}

// FileName is the file name of the library on the running operating system.
func (library *Library) FileName() string {
	return library.Name + fileSuffix(runtime.GOOS)
}

// Path is the location the library is loaded from.
func (library *Library) Path() string {
	if dir := os.Getenv(SearchPathVariable); dir != "" {
		return filepath.Join(dir, library.FileName())
	}
	return library.FileName()
}

// Load opens the library. Only the first call does any work; its outcome is
// returned by every later call.
func (library *Library) Load() (uintptr, error) {
	library.once.Do(func() {
		path := library.Path()
		library.handle, library.err = open(path)
		if library.err != nil {
			library.err = fmt.Errorf("cannot load %s: %w", path, library.err)
			return
		}
		log.Debugf("loaded %s", path)
	})

	return library.handle, library.err
}

// Symbol resolves the address of an exported entry point.
func (library *Library) Symbol(name string) (uintptr, error) {
	handle, err := library.Load()
	if err != nil {
		return 0, err
	}

	address, err := symbol(handle, name)
	if err != nil {
		return 0, fmt.Errorf("cannot resolve %s in %s: %w", name, library.Name, err)
	}
	return address, nil
}

func fileSuffix(goos string) string {
	switch goos {
	case "windows":
		return ".dll"
	case "darwin", "ios":
		return ".dll.dylib"
	default:
		return ".dll.so"
	}
}
