package debugsrv

import (
	"bytes"
	"image/png"
	"net/http/httptest"
	"testing"

	"github.com/photonicat/lcddash/internal/render"
)

type fakeSource struct {
	fb *render.Framebuffer
}

func (f *fakeSource) CurrentFrame() *render.Framebuffer { return f.fb }

func TestFrameEndpointEncodesValidPNG(t *testing.T) {
	fb := render.NewFramebuffer(4, 4)
	fb.Clear(render.RGB(255, 0, 0))
	s := New(":0", &fakeSource{fb: fb})

	req := httptest.NewRequest("GET", "/frame", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	buf := &bytes.Buffer{}
	buf.ReadFrom(resp.Body)
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("frame body is not a valid PNG: %v", err)
	}
}

func TestFrameEndpointUnavailableBeforeFirstFrame(t *testing.T) {
	s := New(":0", &fakeSource{fb: nil})
	req := httptest.NewRequest("GET", "/frame", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestUpdateDataStoresOverrides(t *testing.T) {
	s := New(":0", &fakeSource{})
	body := bytes.NewBufferString(`{"cpu":"42"}`)
	req := httptest.NewRequest("POST", "/data", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if v, ok := s.Override("cpu"); !ok || v != "42" {
		t.Fatalf("Override(cpu) = (%q, %v), want (42, true)", v, ok)
	}
}
