package bounce

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

type drawCall struct {
	op    string
	r     core.Rect
	c     core.Color
	glyph rune
	text  string
}

// recordCanvas is a Canvas that records draw commands.
type recordCanvas struct {
	w, h  int
	calls []drawCall
}

func (rc *recordCanvas) Size() (int, int) { return rc.w, rc.h }

func (rc *recordCanvas) Clear(bg core.Color) {
	rc.calls = append(rc.calls, drawCall{op: "clear", c: bg})
}

func (rc *recordCanvas) FillRect(r core.Rect, c core.Color) {
	rc.calls = append(rc.calls, drawCall{op: "rect", r: r, c: c})
}

func (rc *recordCanvas) FillOval(r core.Rect, c core.Color) {
	rc.calls = append(rc.calls, drawCall{op: "oval", r: r, c: c})
}

func (rc *recordCanvas) FillTriangle(r core.Rect, c core.Color) {
	rc.calls = append(rc.calls, drawCall{op: "triangle", r: r, c: c})
}

func (rc *recordCanvas) DrawGlyph(r core.Rect, glyph rune, c core.Color) {
	rc.calls = append(rc.calls, drawCall{op: "glyph", r: r, glyph: glyph, c: c})
}

func (rc *recordCanvas) DrawText(x, y int, text string, style core.TextStyle) {
	rc.calls = append(rc.calls, drawCall{op: "text", text: text, c: style.Color})
}

func (rc *recordCanvas) texts() []string {
	var out []string
	for _, c := range rc.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func (rc *recordCanvas) has(op string, r core.Rect) bool {
	return slices.ContainsFunc(rc.calls, func(c drawCall) bool {
		return c.op == op && c.r == r
	})
}

func TestDrawOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		want  []string
		not   []string
	}{
		{
			name:  "idle",
			setup: func(e *Engine) {},
			want:  []string{TextStart},
			not:   []string{TextPaused, TextGameOver},
		},
		{
			name:  "running",
			setup: func(e *Engine) { e.HandleKey(core.KeyEnter) },
			not:   []string{TextStart, TextPaused, TextGameOver},
		},
		{
			name: "paused",
			setup: func(e *Engine) {
				e.HandleKey(core.KeyEnter)
				e.HandleKey(core.KeyP)
			},
			want: []string{TextPaused},
			not:  []string{TextStart, TextGameOver},
		},
		{
			name: "over",
			setup: func(e *Engine) {
				e.HandleKey(core.KeyEnter)
				e.gameOver()
			},
			want: []string{TextGameOver, TextStart},
			not:  []string{TextPaused},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rc := &recordCanvas{w: 400, h: 400}
			e := NewEngine(config.DefaultBounceConfig(), rc, nil, 1)
			tc.setup(e)

			e.Draw(rc)

			texts := rc.texts()
			for _, s := range append([]string{"Score: 0", "Level: 1"}, tc.want...) {
				if !slices.Contains(texts, s) {
					t.Errorf("texts %q missing %q", texts, s)
				}
			}
			for _, s := range tc.not {
				if slices.Contains(texts, s) {
					t.Errorf("texts %q should not contain %q", texts, s)
				}
			}
		})
	}
}

func TestDrawEntities(t *testing.T) {
	rc := &recordCanvas{w: 400, h: 400}
	e := NewEngine(config.DefaultBounceConfig(), rc, nil, 1)
	e.HandleKey(core.KeyEnter)
	e.score = 10

	e.Draw(rc)

	if len(rc.calls) == 0 || rc.calls[0] != (drawCall{op: "clear", c: core.ColorField}) {
		t.Fatalf("first draw call should clear the field, got %+v", rc.calls)
	}
	if !rc.has("oval", e.Ball().Rect()) {
		t.Error("ball not drawn as an oval")
	}
	if !rc.has("rect", e.Paddle().Rect()) {
		t.Error("paddle not drawn")
	}
	for _, o := range e.Obstacles() {
		if !rc.has("rect", o) {
			t.Errorf("obstacle %+v not drawn", o)
		}
	}
	if !rc.has("triangle", e.Spike()) || !rc.has("glyph", e.Spike()) {
		t.Error("spike warning not drawn")
	}

	bonus := slices.IndexFunc(rc.calls, func(c drawCall) bool {
		return c.op == "rect" && c.r == e.Bonus()
	})
	if bonus < 0 || rc.calls[bonus].c != core.ColorMagenta {
		t.Errorf("bonus should be drawn magenta at score 10")
	}
}

func TestBonusColor(t *testing.T) {
	tests := []struct {
		score int
		want  core.Color
	}{
		{0, core.ColorBlue},
		{9, core.ColorBlue},
		{10, core.ColorMagenta},
		{25, core.ColorOrange},
		{30, core.ColorCyan},
		{49, core.ColorPink},
		{50, core.ColorBlue},
	}
	for _, tc := range tests {
		if got := BonusColor(tc.score); got != tc.want {
			t.Errorf("BonusColor(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestDriverFrame(t *testing.T) {
	rc := &recordCanvas{w: 400, h: 400}
	keys := core.NewKeyBuffer()
	sounds := &soundLog{}
	d := NewDriver(config.DefaultBounceConfig(), keys, rc, sounds, 1)

	d.Frame(10 * time.Millisecond)
	if d.Engine.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v without input, expected idle", d.Engine.Phase())
	}

	keys.Push(core.KeyEnter)
	rc.calls = nil
	d.Frame(10 * time.Millisecond)
	if d.Engine.Phase() != PhaseRunning || d.Engine.Ticks() != 1 {
		t.Errorf("phase %v ticks %d, expected running after one tick", d.Engine.Phase(), d.Engine.Ticks())
	}
	if len(rc.calls) == 0 {
		t.Error("Frame should draw")
	}

	keys.Push(core.KeyP)
	d.Frame(100 * time.Millisecond)
	if d.Engine.Phase() != PhasePaused || d.Engine.Ticks() != 1 {
		t.Errorf("phase %v ticks %d, expected paused at tick 1", d.Engine.Phase(), d.Engine.Ticks())
	}
}

func TestDriverWithoutInput(t *testing.T) {
	rc := &recordCanvas{w: 400, h: 400}
	d := NewDriver(config.DefaultBounceConfig(), nil, rc, nil, 1)
	d.Frame(time.Second)
	if d.Engine.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", d.Engine.Phase())
	}
}
