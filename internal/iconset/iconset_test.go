package iconset

import (
	"image/color"
	"testing"
)

func TestBuildProducesAllRequestedSprites(t *testing.T) {
	defs := DefaultDefs(24)
	set, err := Build(defs, 24)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for name := range defs {
		if sprite := set.Get(name); sprite == nil {
			t.Fatalf("sprite %q was not built", name)
		} else if sprite.Bounds().Dx() != 24 || sprite.Bounds().Dy() != 24 {
			t.Fatalf("sprite %q size = %v, want 24x24", name, sprite.Bounds())
		}
	}
}

func TestGetUnknownIconReturnsNil(t *testing.T) {
	set, err := Build(DefaultDefs(16), 16)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := set.Get("does-not-exist"); got != nil {
		t.Fatalf("Get(unknown) = %v, want nil", got)
	}
}

func TestRoundedIconBackdropHasRequestedSize(t *testing.T) {
	img := RoundedIconBackdrop(20, 20, 4, color.RGBA{R: 255, A: 255})
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Fatalf("backdrop size = %v, want 20x20", img.Bounds())
	}
}
