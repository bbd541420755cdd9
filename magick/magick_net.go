package magick

import (
	"strings"
	"sync"

	"magickgen/pkg/native"
)

// LogEvents selects the events passed to the log handler.
type LogEvents uint32

const (
	NoLogEvents        LogEvents = 0
	AccelerateLogEvent LogEvents = 1 << (iota - 1)
	AnnotateLogEvent
	BlobLogEvent
	CacheLogEvent
	CoderLogEvent
	ConfigureLogEvent
	DeprecateLogEvent
	DrawLogEvent
	ExceptionLogEvent
	ImageLogEvent
	LocaleLogEvent
	ModuleLogEvent
	PixelLogEvent
	PolicyLogEvent
	ResourceLogEvent
	TraceLogEvent
	TransformLogEvent
	UserLogEvent
	WandLogEvent
)

var logEventNames = []string{
	"Accelerate", "Annotate", "Blob", "Cache", "Coder", "Configure", "Deprecate", "Draw", "Exception",
	"Image", "Locale", "Module", "Pixel", "Policy", "Resource", "Trace", "Transform", "User", "Wand",
}

// String is the comma separated form the native library parses.
func (events LogEvents) String() string {
	if events == NoLogEvents {
		return "None"
	}

	names := make([]string, 0)
	for i, name := range logEventNames {
		if events&(AccelerateLogEvent<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, ",")
}

// LogHandler receives one native log message.
type LogHandler func(event LogEvents, message string)

var (
	logLock       sync.Mutex
	logHandler    LogHandler
	logRegistered bool
)

// Version is the version of the native ImageMagick build.
func Version() string {
	return nativeMagickNETImageMagickVersion()
}

// Delegates lists the delegate libraries the native build was linked with.
func Delegates() string {
	return nativeMagickNETDelegates()
}

// Features lists the optional features of the native build.
func Features() string {
	return nativeMagickNETFeatures()
}

func GetEnvironmentVariable(name string) string {
	return nativeMagickNETGetEnvironmentVariable(name)
}

// SetEnvironmentVariable sets a variable in the environment of the native
// library, which keeps its own copy on Windows.
func SetEnvironmentVariable(name, value string) {
	nativeMagickNETSetEnvironmentVariable(name, value)
}

// InitializeFonts makes the fonts in path available to text drawing.
func InitializeFonts(path string) error {
	return nativeMagickNETInitializeFonts(path)
}

// SetDefaultFontFile sets the font used when none is given. An empty name
// restores the built-in default.
func SetDefaultFontFile(fileName string) error {
	return nativeMagickNETSetDefaultFontFile(optional(fileName))
}

// SetRandomSeed makes the random operations of the native library repeatable.
func SetRandomSeed(seed uint64) {
	nativeMagickNETSetRandomSeed(seed)
}

// SetLog routes the native log messages of events to handler. A nil handler
// stops logging.
func SetLog(events LogEvents, handler LogHandler) {
	logLock.Lock()
	defer logLock.Unlock()

	logHandler = handler
	if handler == nil {
		nativeMagickNETSetLogEvents(NoLogEvents.String())
		return
	}

	// The native callback is created once and kept for the life of the process.
	if !logRegistered {
		nativeMagickNETSetLogDelegate(onLog)
		logRegistered = true
	}
	nativeMagickNETSetLogEvents(events.String())
}

func onLog(eventType uintptr, text uintptr) uintptr {
	logLock.Lock()
	handler := logHandler
	logLock.Unlock()

	if handler != nil {
		handler(LogEvents(eventType), native.GoString(text))
	}
	return 0
}

// MagickFormatInfo describes a format of the native build.
type MagickFormatInfo struct {
	Format       string
	Description  string
	Module       string
	MimeType     string
	IsReadable   bool
	IsWritable   bool
	IsMultiFrame bool
}

// SupportedFormats lists the formats of the native build.
func SupportedFormats() ([]MagickFormatInfo, error) {
	list, length, err := nativeMagickFormatInfoCreateList()
	if err != nil {
		return nil, err
	}
	defer nativeMagickFormatInfoDisposeList(list, length)

	formats := make([]MagickFormatInfo, 0, length)
	for index := range length {
		info, err := nativeMagickFormatInfoGetInfo(list, index)
		if err != nil {
			return nil, err
		}
		formats = append(formats, MagickFormatInfo{
			Format:       nativeMagickFormatInfoGetFormat(info),
			Description:  nativeMagickFormatInfoGetDescription(info),
			Module:       nativeMagickFormatInfoGetModule(info),
			MimeType:     nativeMagickFormatInfoGetMimeType(info),
			IsReadable:   nativeMagickFormatInfoIsReadable(info),
			IsWritable:   nativeMagickFormatInfoIsWritable(info),
			IsMultiFrame: nativeMagickFormatInfoIsMultiFrame(info),
		})
	}
	return formats, nil
}
