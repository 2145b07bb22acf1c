// Package panel drives an ILI9488-class 480x320 TFT over SPI+GPIO:
// periph.io for the bus and pins, a small command/data protocol on top.
package panel

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/photonicat/lcddash/internal/logging"
)

const (
	Width  = 480
	Height = 320

	cmdSWReset = 0x01
	cmdSlpOut  = 0x11
	cmdColMod  = 0x3A
	cmdMADCTL  = 0x36
	cmdCASET   = 0x2A
	cmdRASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdDispOn  = 0x29

	pixFmt18bpp     = 0x66 // RGB666
	madctlLandscape = 0x28 // MV|BGR
	spiSpeedHzMax   = 24_000_000
)

// Conn is the minimal SPI surface the driver needs, satisfied by
// periph.io's spi.Conn and by a fake in tests.
type Conn interface {
	Tx(w, r []byte) error
}

// Panel wraps an ILI9488 over SPI, addressed through three GPIO
// output lines (data/command select, reset, backlight).
type Panel struct {
	conn Conn
	port spi.PortCloser
	dc   gpio.PinOut
	rst  gpio.PinOut
	bl   gpio.PinOut

	chunkBytes int
	throttle   time.Duration
	speedHz    uint32
	offsetX    int
	offsetY    int

	initialized bool
}

// Config holds the tunables read from the environment's SPI knobs.
type Config struct {
	SPIName    string // e.g. "SPI1.0"
	SpeedHz    uint32
	ChunkBytes int
	ThrottleUS int
	DCPin      string
	RSTPin     string
	BLPin      string
	OffsetX    int
	OffsetY    int
}

// Open initializes the host, opens the named SPI port, resolves the
// three GPIO lines by name, and returns a Panel ready for Init.
func Open(cfg Config) (*Panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("panel: host init: %w", err)
	}

	port, err := spireg.Open(cfg.SPIName)
	if err != nil {
		return nil, fmt.Errorf("panel: open spi %s: %w", cfg.SPIName, err)
	}

	speed := cfg.SpeedHz
	if speed == 0 || speed > spiSpeedHzMax {
		speed = spiSpeedHzMax
	}
	conn, err := port.Connect(physic.Frequency(speed)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("panel: connect spi: %w", err)
	}

	dc := gpioreg.ByName(cfg.DCPin)
	rst := gpioreg.ByName(cfg.RSTPin)
	bl := gpioreg.ByName(cfg.BLPin)
	if dc == nil || rst == nil || bl == nil {
		return nil, fmt.Errorf("panel: could not resolve gpio pins dc=%s rst=%s bl=%s", cfg.DCPin, cfg.RSTPin, cfg.BLPin)
	}

	chunk := cfg.ChunkBytes
	if chunk < 3 {
		chunk = 3
	}
	if chunk%3 != 0 {
		chunk -= chunk % 3
		if chunk < 3 {
			chunk = 3
		}
	}

	return &Panel{
		conn:       conn,
		port:       port,
		dc:         dc,
		rst:        rst,
		bl:         bl,
		chunkBytes: chunk,
		throttle:   time.Duration(cfg.ThrottleUS) * time.Microsecond,
		speedHz:    uint32(speed),
		offsetX:    cfg.OffsetX,
		offsetY:    cfg.OffsetY,
	}, nil
}

// Init runs the ILI9488 power-on sequence: reset, sleep-out, RGB666
// color mode, landscape MADCTL, display-on, backlight.
func (p *Panel) Init() error {
	p.reset()

	if err := p.sendCommand(cmdSWReset, nil); err != nil {
		return err
	}
	time.Sleep(150 * time.Millisecond)

	if err := p.sendCommand(cmdSlpOut, nil); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)

	if err := p.sendCommand(cmdColMod, []byte{pixFmt18bpp}); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)

	if err := p.sendCommand(cmdMADCTL, []byte{madctlLandscape}); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)

	if err := p.sendCommand(cmdDispOn, nil); err != nil {
		return err
	}
	time.Sleep(100 * time.Millisecond)

	p.SetBacklight(true)
	p.initialized = true
	logging.Panel.Printf("initialized %dx%d chunk=%dB throttle=%s", Width, Height, p.chunkBytes, p.throttle)
	return nil
}

func (p *Panel) reset() {
	p.rst.Out(gpio.High)
	time.Sleep(10 * time.Millisecond)
	p.rst.Out(gpio.Low)
	time.Sleep(20 * time.Millisecond)
	p.rst.Out(gpio.High)
	time.Sleep(120 * time.Millisecond)
}

func (p *Panel) sendCommand(cmd byte, data []byte) error {
	p.dc.Out(gpio.Low)
	if err := p.conn.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("panel: send command 0x%02x: %w", cmd, err)
	}
	if len(data) > 0 {
		return p.sendData(data)
	}
	return nil
}

func (p *Panel) sendData(data []byte) error {
	p.dc.Out(gpio.High)
	if err := p.conn.Tx(data, nil); err != nil {
		return fmt.Errorf("panel: send data: %w", err)
	}
	return nil
}

// SetBacklight drives the backlight GPIO line.
func (p *Panel) SetBacklight(on bool) {
	if on {
		p.bl.Out(gpio.High)
	} else {
		p.bl.Out(gpio.Low)
	}
}

// Shutdown drives the backlight low and closes the SPI port. Safe to
// call once during process teardown; further calls on p are undefined.
func (p *Panel) Shutdown() error {
	p.SetBacklight(false)
	p.initialized = false
	if p.port == nil {
		return nil
	}
	if err := p.port.Close(); err != nil {
		return fmt.Errorf("panel: close spi port: %w", err)
	}
	return nil
}

// setWindow issues CASET/RASET/RAMWR for an inclusive pixel rectangle.
func (p *Panel) setWindow(x0, y0, x1, y1 uint16) error {
	if err := p.sendCommand(cmdCASET, []byte{byte(x0 >> 8), byte(x0 & 0xFF), byte(x1 >> 8), byte(x1 & 0xFF)}); err != nil {
		return err
	}
	if err := p.sendCommand(cmdRASET, []byte{byte(y0 >> 8), byte(y0 & 0xFF), byte(y1 >> 8), byte(y1 & 0xFF)}); err != nil {
		return err
	}
	return p.sendCommand(cmdRAMWR, nil)
}

// UpdateRect converts an RGB565 sub-rectangle of a stride-pixels-wide
// buffer to RGB666-on-the-wire bytes and streams it to the panel in
// chunkBytes-sized SPI transfers.
func (p *Panel) UpdateRect(x, y, w, h int, rgb565 []uint16, stridePixels int) error {
	if !p.initialized {
		return fmt.Errorf("panel: not initialized")
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	x0, y0 := clampInt(x, 0, Width), clampInt(y, 0, Height)
	x1, y1 := clampInt(x+w, 0, Width), clampInt(y+h, 0, Height)
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	rw := x1 - x0

	wx0, wy0 := uint16(x0+p.offsetX), uint16(y0+p.offsetY)
	wx1, wy1 := uint16(x1-1+p.offsetX), uint16(y1-1+p.offsetY)
	if err := p.setWindow(wx0, wy0, wx1, wy1); err != nil {
		return err
	}
	p.dc.Out(gpio.High)

	chunkPixels := p.chunkBytes / 3
	if chunkPixels < 1 {
		chunkPixels = 1
	}
	line := make([]byte, chunkPixels*3)

	chunkIndex := 0
	bytesSent := 0
	for row := y0; row < y1; row++ {
		src := rgb565[row*stridePixels+x0 : row*stridePixels+x0+rw]
		for len(src) > 0 {
			n := chunkPixels
			if n > len(src) {
				n = len(src)
			}
			buf := line[:n*3]
			for i := 0; i < n; i++ {
				r5, g6, b5 := unpack565(src[i])
				buf[i*3+0] = r5 << 3
				buf[i*3+1] = g6 << 2
				buf[i*3+2] = b5 << 3
			}
			if err := p.conn.Tx(buf, nil); err != nil {
				logging.Panel.Printf("spi transfer failed: chunk=%d bytes_sent=%d speed_hz=%d: %v", chunkIndex, bytesSent, p.speedHz, err)
				return fmt.Errorf("panel: spi transfer: %w", err)
			}
			bytesSent += len(buf)
			chunkIndex++
			src = src[n:]
			if p.throttle > 0 {
				time.Sleep(p.throttle)
			}
		}
	}
	return nil
}

// Display pushes a full Width*Height RGB565 buffer.
func (p *Panel) Display(buffer []uint16) error {
	return p.UpdateRect(0, 0, Width, Height, buffer, Width)
}

func unpack565(px uint16) (r5, g6, b5 byte) {
	return byte((px >> 11) & 0x1F), byte((px >> 5) & 0x3F), byte(px & 0x1F)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
