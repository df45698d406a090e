package render

import (
	"testing"
)

func TestBufferSetAndGet(t *testing.T) {
	b := NewBuffer(10, 5)

	b.SetFg(3, 2, '▲', RgbCar)
	cell := b.Get(3, 2)
	if cell.Rune != '▲' {
		t.Errorf("expected rune ▲, got %q", cell.Rune)
	}
	if cell.Fg != RgbCar {
		t.Errorf("expected car color, got %+v", cell.Fg)
	}
	if cell.Bg != RgbBackground {
		t.Errorf("expected background preserved by SetFg, got %+v", cell.Bg)
	}
}

func TestBufferOutOfBoundsIgnored(t *testing.T) {
	b := NewBuffer(4, 4)

	b.SetFg(-1, 0, 'x', RgbText)
	b.SetFg(4, 0, 'x', RgbText)
	b.SetFg(0, -1, 'x', RgbText)
	b.SetFg(0, 4, 'x', RgbText)
	b.SetBg(99, 99, RgbWarn)
	b.BlendBg(99, 99, RgbWarn, 0.5)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := b.Get(x, y); c.Rune != 0 || c.Bg != RgbBackground {
				t.Fatalf("expected untouched cell at %d,%d, got %+v", x, y, c)
			}
		}
	}
}

func TestBufferClearResetsEverything(t *testing.T) {
	b := NewBuffer(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			b.SetFg(x, y, '#', RgbText)
			b.SetBg(x, y, RgbWarn)
		}
	}

	b.Clear()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := b.Get(x, y)
			if c.Rune != 0 || c.Bg != RgbBackground {
				t.Fatalf("expected cleared cell at %d,%d, got %+v", x, y, c)
			}
		}
	}
}

func TestBufferResizePreservesNothing(t *testing.T) {
	b := NewBuffer(4, 4)
	b.SetFg(0, 0, '#', RgbText)

	b.Resize(6, 3)
	if b.Width() != 6 || b.Height() != 3 {
		t.Fatalf("expected 6x3 after resize, got %dx%d", b.Width(), b.Height())
	}
	if c := b.Get(0, 0); c.Rune != 0 {
		t.Errorf("expected cleared buffer after resize, got %+v", c)
	}

	// Shrink reuses capacity
	b.Resize(2, 2)
	if b.Width() != 2 || b.Height() != 2 {
		t.Errorf("expected 2x2 after shrink, got %dx%d", b.Width(), b.Height())
	}
}

func TestBlendBgAccumulates(t *testing.T) {
	b := NewBuffer(2, 2)

	b.BlendBg(0, 0, RgbWarn, 0.5)
	first := b.Get(0, 0).Bg
	if first == RgbBackground {
		t.Fatal("expected blend to shift the background")
	}

	b.BlendBg(0, 0, RgbWarn, 0.5)
	second := b.Get(0, 0).Bg
	if second == first {
		t.Error("expected repeated blends to accumulate")
	}
}

func TestWriteStringClipsAtEdge(t *testing.T) {
	b := NewBuffer(5, 1)
	b.WriteString(3, 0, "abcdef", RgbText)

	if c := b.Get(3, 0); c.Rune != 'a' {
		t.Errorf("expected a at column 3, got %q", c.Rune)
	}
	if c := b.Get(4, 0); c.Rune != 'b' {
		t.Errorf("expected b at column 4, got %q", c.Rune)
	}
}

type countingRenderer struct {
	order *[]string
	name  string
}

func (c *countingRenderer) Render(ctx Context, buf *Buffer) {
	*c.order = append(*c.order, c.name)
}

type hiddenRenderer struct {
	countingRenderer
}

func (h *hiddenRenderer) IsVisible() bool { return false }

func TestOrchestratorPriorityOrder(t *testing.T) {
	o := NewOrchestrator(nil, 10, 5)

	var order []string
	o.Register(&countingRenderer{&order, "status"}, PriorityStatusBar)
	o.Register(&countingRenderer{&order, "sky"}, PrioritySky)
	o.Register(&countingRenderer{&order, "road"}, PriorityRoad)
	o.Register(&countingRenderer{&order, "player"}, PriorityPlayer)

	o.Frame(NewContext(10, 5, 0, 0, false, false))

	want := []string{"sky", "road", "player", "status"}
	if len(order) != len(want) {
		t.Fatalf("expected %d renders, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("expected %s at slot %d, got %s", want[i], i, order[i])
		}
	}
}

func TestOrchestratorSkipsHiddenRenderers(t *testing.T) {
	o := NewOrchestrator(nil, 10, 5)

	var order []string
	o.Register(&hiddenRenderer{countingRenderer{&order, "debug"}}, PriorityDebug)
	o.Register(&countingRenderer{&order, "sky"}, PrioritySky)

	o.Frame(NewContext(10, 5, 0, 0, false, false))

	if len(order) != 1 || order[0] != "sky" {
		t.Errorf("expected only sky rendered, got %v", order)
	}
}
