package native

import "reflect"

// Handle is implemented by every value wrapping a native instance.
type Handle interface {
	Instance() uintptr
}

// GetInstance returns the native instance of value. A nil value, including a
// nil pointer stored in the interface, has instance zero.
func GetInstance(value Handle) uintptr {
	if value == nil {
		return 0
	}
	if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer && v.IsNil() {
		return 0
	}

	return value.Instance()
}

// Object owns one native instance and releases it through its disposer.
// Generated instance types embed it.
type Object struct {
	instance uintptr
	disposer func(instance uintptr)

	// Warning receives the warnings raised by calls on this instance. When nil
	// they go to WarningHandler.
	Warning func(*MagickError)
}

func NewObject(instance uintptr, disposer func(instance uintptr)) Object {
	return Object{instance: instance, disposer: disposer}
}

// Instance is zero for a nil or disposed object.
func (o *Object) Instance() uintptr {
	if o == nil {
		return 0
	}
	return o.instance
}

// SetInstance replaces the instance, disposing of the previous one.
func (o *Object) SetInstance(instance uintptr) {
	if o.instance == instance {
		return
	}
	o.Dispose()
	o.instance = instance
}

// Dispose releases the native instance. Disposing twice is a no-op.
func (o *Object) Dispose() {
	if o == nil || o.instance == 0 {
		return
	}

	if o.disposer != nil {
		o.disposer(o.instance)
	}
	o.instance = 0
}

// CheckException is the propagation routine of instance entry points.
func (o *Object) CheckException(exception uintptr) error {
	warn := o.Warning
	if warn == nil {
		warn = WarningHandler
	}
	return checkException(exception, warn)
}
