package magick

import (
	"errors"
	"fmt"
)

var ErrInvalidPercentage = errors.New("percentage must be in (0, 100]")

type resourceLimits struct{}

// ResourceLimits are the process wide limits of the native library. Sizes
// are in bytes, Width and Height in pixels.
var ResourceLimits resourceLimits

func (resourceLimits) Area() uint64 {
	return nativeResourceLimitsArea()
}

func (resourceLimits) SetArea(value uint64) {
	nativeResourceLimitsSetArea(value)
}

func (resourceLimits) Disk() uint64 {
	return nativeResourceLimitsDisk()
}

func (resourceLimits) SetDisk(value uint64) {
	nativeResourceLimitsSetDisk(value)
}

func (resourceLimits) Height() uint64 {
	return nativeResourceLimitsHeight()
}

func (resourceLimits) SetHeight(value uint64) {
	nativeResourceLimitsSetHeight(value)
}

func (resourceLimits) ListLength() uint64 {
	return nativeResourceLimitsListLength()
}

func (resourceLimits) SetListLength(value uint64) {
	nativeResourceLimitsSetListLength(value)
}

func (resourceLimits) Memory() uint64 {
	return nativeResourceLimitsMemory()
}

func (resourceLimits) SetMemory(value uint64) {
	nativeResourceLimitsSetMemory(value)
}

func (resourceLimits) Thread() uint64 {
	return nativeResourceLimitsThread()
}

func (resourceLimits) SetThread(value uint64) {
	nativeResourceLimitsSetThread(value)
}

func (resourceLimits) Throttle() uint64 {
	return nativeResourceLimitsThrottle()
}

func (resourceLimits) SetThrottle(value uint64) {
	nativeResourceLimitsSetThrottle(value)
}

func (resourceLimits) Width() uint64 {
	return nativeResourceLimitsWidth()
}

func (resourceLimits) SetWidth(value uint64) {
	nativeResourceLimitsSetWidth(value)
}

// MaxMemoryRequest is the largest single allocation the native library makes.
func (resourceLimits) MaxMemoryRequest() uint64 {
	return nativeResourceLimitsMaxMemoryRequest()
}

func (resourceLimits) SetMaxMemoryRequest(value uint64) {
	nativeResourceLimitsSetMaxMemoryRequest(value)
}

// LimitMemory lowers Memory to percentage of its current value.
func (limits resourceLimits) LimitMemory(percentage float64) error {
	if percentage <= 0 || percentage > 100 {
		return fmt.Errorf("%w: %v", ErrInvalidPercentage, percentage)
	}
	limits.SetMemory(uint64(float64(limits.Memory()) * percentage / 100))
	return nil
}
