package ebitenhost

// Breakpoints used by ScreenDevice, in logical pixels.
const (
	PhoneMaxWidth  = 767
	TabletMaxWidth = 1024
)

// ScreenDevice classifies the device from the window width and whether touch
// input has been seen. It implements reveal.Device.
type ScreenDevice struct {
	Width float64
	Touch bool
}

// Phone reports a narrow touch screen.
func (d *ScreenDevice) Phone() bool {
	return d.Touch && d.Width <= PhoneMaxWidth
}

// Tablet reports a medium-width touch screen.
func (d *ScreenDevice) Tablet() bool {
	return d.Touch && d.Width > PhoneMaxWidth && d.Width <= TabletMaxWidth
}

// Mobile reports a phone or a tablet.
func (d *ScreenDevice) Mobile() bool {
	return d.Phone() || d.Tablet()
}
