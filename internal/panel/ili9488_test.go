package panel

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

type fakeConn struct {
	txs [][]byte
}

func (f *fakeConn) Tx(w, r []byte) error {
	cp := make([]byte, len(w))
	copy(cp, w)
	f.txs = append(f.txs, cp)
	return nil
}

type fakePin struct {
	level gpio.Level
}

func (f *fakePin) String() string         { return "fake" }
func (f *fakePin) Halt() error            { return nil }
func (f *fakePin) Name() string           { return "fake" }
func (f *fakePin) Number() int            { return -1 }
func (f *fakePin) Function() string       { return "" }
func (f *fakePin) Out(l gpio.Level) error { f.level = l; return nil }
func (f *fakePin) PWM(duty gpio.Duty, freq physic.Frequency) error {
	return nil
}

func newTestPanel() (*Panel, *fakeConn) {
	conn := &fakeConn{}
	p := &Panel{
		conn:        conn,
		dc:          &fakePin{},
		rst:         &fakePin{},
		bl:          &fakePin{},
		chunkBytes:  9, // 3 pixels per chunk
		initialized: true,
	}
	return p, conn
}

func TestUpdateRectIssuesCASETRASETWithInclusiveBounds(t *testing.T) {
	p, conn := newTestPanel()
	buf := make([]uint16, 4*4)
	if err := p.UpdateRect(1, 2, 2, 2, buf, 4); err != nil {
		t.Fatalf("UpdateRect: %v", err)
	}

	// txs[0]=CASET cmd, txs[1]=CASET data, txs[2]=RASET cmd, txs[3]=RASET data, txs[4]=RAMWR cmd
	wantCaset := []byte{0x00, 0x01, 0x00, 0x02} // x0=1, x1=2 (inclusive: x+w-1)
	wantRaset := []byte{0x00, 0x02, 0x00, 0x03} // y0=2, y1=3

	if !bytes.Equal(conn.txs[1], wantCaset) {
		t.Fatalf("CASET payload = % x, want % x", conn.txs[1], wantCaset)
	}
	if !bytes.Equal(conn.txs[3], wantRaset) {
		t.Fatalf("RASET payload = % x, want % x", conn.txs[3], wantRaset)
	}
	if len(conn.txs[4]) != 1 || conn.txs[4][0] != cmdRAMWR {
		t.Fatalf("expected RAMWR command byte, got % x", conn.txs[4])
	}
}

func TestUpdateRectConvertsRGB565ToRGB666Bytes(t *testing.T) {
	p, conn := newTestPanel()
	// One pixel: R=0x1F(5b), G=0x3F(6b), B=0x1F(5b) => all white in 565.
	white565 := uint16(0xFFFF)
	buf := []uint16{white565}
	if err := p.UpdateRect(0, 0, 1, 1, buf, 1); err != nil {
		t.Fatalf("UpdateRect: %v", err)
	}

	pixelBytes := conn.txs[len(conn.txs)-1]
	want := []byte{0xF8, 0xFC, 0xF8} // r5<<3, g6<<2, b5<<3
	if !bytes.Equal(pixelBytes, want) {
		t.Fatalf("RAMWR pixel bytes = % x, want % x", pixelBytes, want)
	}
}

func TestUpdateRectClampsToPanelBounds(t *testing.T) {
	p, _ := newTestPanel()
	buf := make([]uint16, Width*Height)
	if err := p.UpdateRect(-5, -5, 20, 20, buf, Width); err != nil {
		t.Fatalf("UpdateRect: %v", err)
	}
}

func TestUpdateRectNoOpOnDegenerateRect(t *testing.T) {
	p, conn := newTestPanel()
	buf := make([]uint16, 4)
	if err := p.UpdateRect(0, 0, 0, 0, buf, 1); err != nil {
		t.Fatalf("UpdateRect: %v", err)
	}
	if len(conn.txs) != 0 {
		t.Fatalf("expected no SPI transactions for a zero-size rect, got %d", len(conn.txs))
	}
}

func TestUpdateRectAppliesConfiguredOffset(t *testing.T) {
	p, conn := newTestPanel()
	p.offsetX, p.offsetY = 10, 20
	buf := make([]uint16, 4*4)
	if err := p.UpdateRect(1, 2, 2, 2, buf, 4); err != nil {
		t.Fatalf("UpdateRect: %v", err)
	}

	wantCaset := []byte{0x00, 0x0B, 0x00, 0x0C} // x0=1+10, x1=2+10
	wantRaset := []byte{0x00, 0x16, 0x00, 0x17} // y0=2+20, y1=3+20
	if !bytes.Equal(conn.txs[1], wantCaset) {
		t.Fatalf("CASET payload = % x, want % x", conn.txs[1], wantCaset)
	}
	if !bytes.Equal(conn.txs[3], wantRaset) {
		t.Fatalf("RASET payload = % x, want % x", conn.txs[3], wantRaset)
	}
}

func TestUpdateRectFailsWhenNotInitialized(t *testing.T) {
	p, _ := newTestPanel()
	p.initialized = false
	buf := make([]uint16, 4)
	if err := p.UpdateRect(0, 0, 1, 1, buf, 1); err == nil {
		t.Fatal("expected an error when the panel has not been initialized")
	}
}
