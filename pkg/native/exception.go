package native

import (
	"fmt"
	"sync"
)

// Severity is the ImageMagick exception type. Values below ErrorSeverity are warnings.
type Severity int32

const (
	UndefinedSeverity  Severity = 0
	WarningSeverity    Severity = 300
	ErrorSeverity      Severity = 400
	FatalErrorSeverity Severity = 700
)

var severityNames = map[Severity]string{
	300: "ResourceLimitWarning",
	305: "TypeWarning",
	310: "OptionWarning",
	315: "DelegateWarning",
	320: "MissingDelegateWarning",
	325: "CorruptImageWarning",
	330: "FileOpenWarning",
	335: "BlobWarning",
	340: "StreamWarning",
	345: "CacheWarning",
	350: "CoderWarning",
	352: "FilterWarning",
	355: "ModuleWarning",
	360: "DrawWarning",
	365: "ImageWarning",
	370: "WandWarning",
	375: "RandomWarning",
	380: "XServerWarning",
	385: "MonitorWarning",
	390: "RegistryWarning",
	395: "ConfigureWarning",
	399: "PolicyWarning",
	400: "ResourceLimitError",
	405: "TypeError",
	410: "OptionError",
	415: "DelegateError",
	420: "MissingDelegateError",
	425: "CorruptImageError",
	430: "FileOpenError",
	435: "BlobError",
	440: "StreamError",
	445: "CacheError",
	450: "CoderError",
	452: "FilterError",
	455: "ModuleError",
	460: "DrawError",
	465: "ImageError",
	470: "WandError",
	475: "RandomError",
	480: "XServerError",
	485: "MonitorError",
	490: "RegistryError",
	495: "ConfigureError",
	499: "PolicyError",
	700: "ResourceLimitFatalError",
}

func (s Severity) String() string {
	if name, found := severityNames[s]; found {
		return name
	}
	switch {
	case s >= FatalErrorSeverity:
		return fmt.Sprintf("FatalError(%d)", int32(s))
	case s >= ErrorSeverity:
		return fmt.Sprintf("Error(%d)", int32(s))
	case s >= WarningSeverity:
		return fmt.Sprintf("Warning(%d)", int32(s))
	default:
		return fmt.Sprintf("Undefined(%d)", int32(s))
	}
}

// MagickError is an exception raised by the native library.
type MagickError struct {
	Severity    Severity
	Message     string
	Description string
}

func (e *MagickError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s: %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Severity, e.Message, e.Description)
}

func (e *MagickError) IsWarning() bool {
	return e.Severity < ErrorSeverity
}

// WarningHandler receives the warnings raised by static entry points. Warnings
// never fail a call.
var WarningHandler = func(warning *MagickError) {
	log.Warningf("%s", warning)
}

// readException turns an exception pointer into a MagickError and releases the
// native exception. A zero pointer means the call succeeded.
var readException = readNativeException

// CheckException is the propagation routine of static and constructor entry
// points. Errors are returned; warnings go to WarningHandler.
func CheckException(exception uintptr) error {
	return checkException(exception, WarningHandler)
}

func checkException(exception uintptr, warn func(*MagickError)) error {
	magickError := readException(exception)
	if magickError == nil {
		return nil
	}

	if magickError.IsWarning() {
		if warn != nil {
			warn(magickError)
		}
		return nil
	}

	return magickError
}

type exceptionHelper struct {
	severity    *Proc[func(exception uintptr) int32]
	message     *Proc[func(exception uintptr) uintptr]
	description *Proc[func(exception uintptr) uintptr]
	dispose     *Proc[func(exception uintptr)]
}

var (
	exceptionHelperOnce sync.Once
	exceptionHelpers    *exceptionHelper
	exceptionHelperErr  error
)

func currentExceptionHelper() (*exceptionHelper, error) {
	exceptionHelperOnce.Do(func() {
		library, err := Current()
		if err != nil {
			exceptionHelperErr = err
			return
		}

		exceptionHelpers = &exceptionHelper{
			severity:    NewProc[func(exception uintptr) int32](library, "MagickExceptionHelper_Severity"),
			message:     NewProc[func(exception uintptr) uintptr](library, "MagickExceptionHelper_Message"),
			description: NewProc[func(exception uintptr) uintptr](library, "MagickExceptionHelper_Description"),
			dispose:     NewProc[func(exception uintptr)](library, "MagickExceptionHelper_Dispose"),
		}
	})

	return exceptionHelpers, exceptionHelperErr
}

func readNativeException(exception uintptr) *MagickError {
	if exception == 0 {
		return nil
	}

	helper, err := currentExceptionHelper()
	if err != nil {
		return &MagickError{Severity: FatalErrorSeverity, Message: err.Error()}
	}
	defer helper.dispose.Get()(exception)

	return &MagickError{
		Severity:    Severity(helper.severity.Get()(exception)),
		Message:     GoString(helper.message.Get()(exception)),
		Description: GoString(helper.description.Get()(exception)),
	}
}
