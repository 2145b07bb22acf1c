// Package debugsrv exposes the current composited frame and a metric
// override endpoint over HTTP, for inspecting the dashboard from a
// browser during development. Posted overrides are stored only; the
// render loop does not read them, so they do not change the frame.
package debugsrv

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/photonicat/lcddash/internal/logging"
	"github.com/photonicat/lcddash/internal/render"
)

// FrameSource supplies the most recently composited frame.
type FrameSource interface {
	CurrentFrame() *render.Framebuffer
}

// Server is a small fiber app serving /frame as PNG and accepting
// metric overrides at POST /data, which it keeps for Override to
// return.
type Server struct {
	addr    string
	source  FrameSource
	app     *fiber.App

	mu        sync.RWMutex
	overrides map[string]string
}

// New builds a Server bound to addr, reading frames from source.
func New(addr string, source FrameSource) *Server {
	s := &Server{
		addr:      addr,
		source:    source,
		overrides: make(map[string]string),
	}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/", s.index)
	app.Get("/frame", s.frame)
	app.Post("/data", s.updateData)
	s.app = app
	return s
}

// Override returns a previously POSTed metric override, if any.
func (s *Server) Override(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.overrides[key]
	return v, ok
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe() error {
	logging.Debug.Println("starting debug http server on", s.addr)
	return s.app.Listen(s.addr)
}

func (s *Server) index(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/html")
	return c.SendString(`<html><body style="margin:0;background:#111">
<img src="/frame" style="image-rendering:pixelated;width:960px;height:640px">
</body></html>`)
}

func (s *Server) frame(c *fiber.Ctx) error {
	fb := s.source.CurrentFrame()
	if fb == nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("no frame available")
	}

	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r8, g8, b8 := render.RGB565ToRGB888(fb.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r8, G: g8, B: b8, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to encode frame")
	}
	c.Set("Content-Type", "image/png")
	c.Set("Content-Length", strconv.Itoa(buf.Len()))
	return c.Send(buf.Bytes())
}

func (s *Server) updateData(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid json")
	}
	s.mu.Lock()
	for k, v := range data {
		s.overrides[k] = v
	}
	s.mu.Unlock()
	return c.SendString("ok")
}
