// Package evdev is the touchpad driver: it reads raw Linux multitouch
// protocol B events off a /dev/input/eventN node and turns them into
// touch.Event values, batching by SYN_REPORT the same way the kernel
// batches simultaneous axis changes into one frame.
package evdev

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"unsafe"

	rawevdev "github.com/gvalkov/golang-evdev"

	"ffgestures/internal/geom"
	"ffgestures/internal/logging"
	"ffgestures/internal/touch"
)

// Device is an open touchpad, ready to be Read in a loop.
type Device struct {
	dev *rawevdev.InputDevice
	log logging.Logger

	xUnitsPerMM float64
	yUnitsPerMM float64

	slot int
	down [touch.MaxSlots]bool
	pos  [touch.MaxSlots]geom.Point

	wentDown [touch.MaxSlots]bool
	wentUp   [touch.MaxSlots]bool
	moved    [touch.MaxSlots]bool
	anyAbs   bool
}

// Find returns the device path of the first input device whose name
// contains nameContains (case-insensitive), e.g. "touchpad". It's a thin
// convenience over rawevdev.ListInputDevices for callers that don't want
// to hardcode a /dev/input/eventN path.
func Find(nameContains string) (string, error) {
	devices, err := rawevdev.ListInputDevices()
	if err != nil {
		return "", fmt.Errorf("listing input devices: %w", err)
	}
	want := strings.ToLower(nameContains)
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.Name), want) {
			return d.Fn, nil
		}
	}
	return "", fmt.Errorf("no input device matching %q found", nameContains)
}

// Open opens the device at path, grabs it for exclusive access, and reads
// its absolute-axis resolution so touch positions can be converted from
// raw device units to millimeters.
func Open(path string, log logging.Logger) (*Device, error) {
	dev, err := rawevdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if err := dev.Grab(); err != nil {
		return nil, fmt.Errorf("grabbing %s: %w", path, err)
	}

	xRes, err := absResolution(path, rawevdev.ABS_MT_POSITION_X)
	if err != nil {
		return nil, fmt.Errorf("reading X axis resolution: %w", err)
	}
	yRes, err := absResolution(path, rawevdev.ABS_MT_POSITION_Y)
	if err != nil {
		return nil, fmt.Errorf("reading Y axis resolution: %w", err)
	}
	if xRes <= 0 || yRes <= 0 {
		return nil, fmt.Errorf("%s reports non-positive axis resolution (x=%d, y=%d)", path, xRes, yRes)
	}

	return &Device{
		dev:         dev,
		log:         log,
		xUnitsPerMM: float64(xRes),
		yUnitsPerMM: float64(yRes),
	}, nil
}

// Close releases the device's exclusive grab.
func (d *Device) Close() error {
	return d.dev.Release()
}

func (d *Device) toPoint(xUnits, yUnits int32) geom.Point {
	return geom.Point{
		X: float64(xUnits) / d.xUnitsPerMM,
		Y: float64(yUnits) / d.yUnitsPerMM,
	}
}

// Read blocks until the kernel reports one or more ticks of activity and
// returns the touch.Events they decode to. Every call that observes at
// least one EV_ABS/EV_SYN tick ends its returned slice with a
// touch.FrameEvent; a call can return zero events if the kernel only
// reported key events this driver doesn't care about.
func (d *Device) Read() ([]touch.Event, error) {
	raw, err := d.dev.Read()
	if err != nil {
		return nil, fmt.Errorf("reading input events: %w", err)
	}

	var out []touch.Event
	for i := range raw {
		ev := &raw[i]
		switch ev.Type {
		case rawevdev.EV_ABS:
			d.handleAbs(ev)
		case rawevdev.EV_SYN:
			if ev.Code == rawevdev.SYN_REPORT {
				out = append(out, d.flush()...)
			}
		}
	}
	return out, nil
}

func (d *Device) handleAbs(ev *rawevdev.InputEvent) {
	d.anyAbs = true
	switch ev.Code {
	case rawevdev.ABS_MT_SLOT:
		if int(ev.Value) < 0 || int(ev.Value) >= touch.MaxSlots {
			d.log.Warnf("evdev: slot %d out of range, dropping", ev.Value)
			d.slot = -1
			return
		}
		d.slot = int(ev.Value)

	case rawevdev.ABS_MT_TRACKING_ID:
		if d.slot < 0 {
			return
		}
		if ev.Value == -1 {
			if d.down[d.slot] {
				d.down[d.slot] = false
				d.wentUp[d.slot] = true
			}
		} else {
			if !d.down[d.slot] {
				d.down[d.slot] = true
				d.wentDown[d.slot] = true
			}
		}

	case rawevdev.ABS_MT_POSITION_X:
		if d.slot < 0 {
			return
		}
		d.pos[d.slot].X = float64(ev.Value) / d.xUnitsPerMM
		if d.down[d.slot] {
			d.moved[d.slot] = true
		}

	case rawevdev.ABS_MT_POSITION_Y:
		if d.slot < 0 {
			return
		}
		d.pos[d.slot].Y = float64(ev.Value) / d.yUnitsPerMM
		if d.down[d.slot] {
			d.moved[d.slot] = true
		}
	}
}

// flush turns this tick's accumulated per-slot dirty flags into ordered
// touch.Events and resets them for the next tick.
func (d *Device) flush() []touch.Event {
	if !d.anyAbs {
		return nil
	}

	var out []touch.Event
	for i := 0; i < touch.MaxSlots; i++ {
		switch {
		case d.wentUp[i]:
			out = append(out, touch.Up(i))
		case d.wentDown[i]:
			out = append(out, touch.Down(i, d.pos[i]))
		case d.moved[i]:
			out = append(out, touch.Motion(i, d.pos[i]))
		}
		d.wentDown[i] = false
		d.wentUp[i] = false
		d.moved[i] = false
	}
	d.anyAbs = false

	return append(out, touch.FrameEvent())
}

// inputAbsInfo mirrors the kernel's struct input_absinfo: six int32
// fields (value, minimum, maximum, fuzz, flat, resolution).
type inputAbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// eviocgabs derives the EVIOCGABS(abs) ioctl request number: _IOR('E',
// 0x40+abs, struct input_absinfo). golang-evdev doesn't expose an
// absolute-axis-info accessor, so this talks to the kernel directly, the
// same raw-ioctl idiom the rest of the evdev-using reference code in this
// corpus uses for other ioctls.
func eviocgabs(abs uint16) uintptr {
	const (
		iocRead    = 2
		iocTypeE   = 'E'
		iocNrBase  = 0x40
		sizeofInfo = 24 // 6 * sizeof(int32)
	)
	dir := uintptr(iocRead)
	typ := uintptr(iocTypeE)
	nr := uintptr(iocNrBase) + uintptr(abs)
	size := uintptr(sizeofInfo)
	return (dir << 30) | (size << 16) | (typ << 8) | nr
}

// absResolution reads the resolution (units per millimeter, per the
// kernel's multitouch protocol convention) of one absolute axis on the
// device at path.
func absResolution(path string, abs uint16) (int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var info inputAbsInfo
	req := eviocgabs(abs)
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), req, uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return 0, errno
	}
	return info.Resolution, nil
}
