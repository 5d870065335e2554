package reveal

import (
	"strconv"
	"strings"
)

// Device classifies the host device. Implementations are supplied by the
// host; the registry treats each predicate as opaque.
type Device interface {
	Mobile() bool
	Phone() bool
	Tablet() bool
}

// StaticDevice is a Device with fixed answers.
type StaticDevice struct {
	IsMobile bool
	IsPhone  bool
	IsTablet bool
}

func (d StaticDevice) Mobile() bool { return d.IsMobile }
func (d StaticDevice) Phone() bool  { return d.IsPhone }
func (d StaticDevice) Tablet() bool { return d.IsTablet }

// DeviceClass names one of the Device predicates.
type DeviceClass uint8

const (
	DeviceMobile DeviceClass = iota
	DevicePhone
	DeviceTablet
)

var deviceClassNames = [...]string{"mobile", "phone", "tablet"}

func (c DeviceClass) String() string {
	if int(c) < len(deviceClassNames) {
		return deviceClassNames[c]
	}
	return "unknown"
}

type disableKind uint8

const (
	disableNever disableKind = iota
	disableAlways
	disableDevice
	disableCustom
)

// DisablePolicy decides whether reveal is turned off. The zero value never
// disables.
type DisablePolicy struct {
	kind  disableKind
	class DeviceClass
	pred  func() bool
}

var (
	// DisableNever keeps reveal enabled.
	DisableNever = DisablePolicy{kind: disableNever}
	// DisableAlways forces reveal off.
	DisableAlways = DisablePolicy{kind: disableAlways}
)

// DisableOn disables reveal when the device matches class.
func DisableOn(class DeviceClass) DisablePolicy {
	return DisablePolicy{kind: disableDevice, class: class}
}

// DisableWhen disables reveal when fn returns true. A nil fn never disables.
func DisableWhen(fn func() bool) DisablePolicy {
	return DisablePolicy{kind: disableCustom, pred: fn}
}

// Disabled evaluates the policy. A nil device never matches a class.
func (p DisablePolicy) Disabled(dev Device) bool {
	switch p.kind {
	case disableAlways:
		return true
	case disableDevice:
		if dev == nil {
			return false
		}
		switch p.class {
		case DeviceMobile:
			return dev.Mobile()
		case DevicePhone:
			return dev.Phone()
		case DeviceTablet:
			return dev.Tablet()
		}
	case disableCustom:
		return p.pred != nil && p.pred()
	}
	return false
}

// String returns the textual form accepted by ParseDisable, or "custom".
func (p DisablePolicy) String() string {
	switch p.kind {
	case disableAlways:
		return "true"
	case disableDevice:
		return p.class.String()
	case disableCustom:
		return "custom"
	default:
		return "false"
	}
}

// ParseDisable parses "true", "false", "mobile", "phone" or "tablet".
// The second result is false for any other input.
func ParseDisable(s string) (DisablePolicy, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "false":
		return DisableNever, true
	case "true":
		return DisableAlways, true
	}
	for i, name := range deviceClassNames {
		if s == name {
			return DisableOn(DeviceClass(i)), true
		}
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return DisableAlways, true
		}
		return DisableNever, true
	}
	return DisableNever, false
}
