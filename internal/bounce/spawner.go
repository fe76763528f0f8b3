package bounce

import (
	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

// Spawner places obstacles, the bonus and the spike by rejection sampling.
//
// Each entity has a fixed size and a band it may appear in. Candidates are
// drawn uniformly from the band until one clears every tracked entity. When
// the arena is too small for an entity (before first layout it reports 0x0),
// or the band is empty, the spawner returns a fixed rectangle at the origin
// without sampling. Sampling is also capped at maxAttempts draws so a crowded
// arena degrades to the same fallback instead of looping forever.
type Spawner struct {
	rng         *SimpleRNG
	obstacles   config.ObstacleConfig
	bonus       config.BonusConfig
	spikeSize   int
	spikeMargin int
	maxAttempts int
}

// NewSpawner creates a spawner for cfg seeded with seed.
func NewSpawner(cfg config.BounceConfig, seed int64) *Spawner {
	return &Spawner{
		rng:         NewSimpleRNG(seed),
		obstacles:   cfg.Obstacles,
		bonus:       cfg.Bonus,
		spikeSize:   cfg.Rules.SpikeSize,
		spikeMargin: cfg.Rules.SpikeMargin,
		maxAttempts: cfg.Spawn.MaxAttempts,
	}
}

// SpawnObstacles places a fresh batch of obstacles. Each one avoids the
// obstacles placed before it in the batch plus spike and bonus (either may be
// nil). Arenas no wider than an obstacle get an empty batch. If a slot cannot
// be filled within the attempt cap the batch stops short.
func (s *Spawner) SpawnObstacles(w, h int, spike, bonus *core.Rect) []core.Rect {
	ow, oh := s.obstacles.Width, s.obstacles.Height
	if w <= ow {
		return nil
	}

	batch := make([]core.Rect, 0, s.obstacles.Count)
	for i, n := 0, s.obstacles.Count; i < n; i++ {
		r, ok := s.sample(func() core.Rect {
			x := s.rng.Intn(w - ow)
			y := s.obstacles.MinY + s.rng.Intn(s.obstacles.BandHeight)
			return core.NewRect(x, y, ow, oh)
		}, func(c core.Rect) bool {
			return core.IntersectsAny(c, batch) || hits(c, spike) || hits(c, bonus)
		})
		if !ok {
			break
		}
		batch = append(batch, r)
	}
	return batch
}

// SpawnBonus places the bonus clear of obstacles and spike (spike may be nil).
func (s *Spawner) SpawnBonus(w, h int, obstacles []core.Rect, spike *core.Rect) core.Rect {
	size := s.bonus.Size
	fallback := core.NewRect(0, 0, size, size)

	band, ok := s.band(w, h, size)
	if !ok {
		return fallback
	}

	r, ok := s.sample(func() core.Rect {
		return s.pick(band, size)
	}, func(c core.Rect) bool {
		return core.IntersectsAny(c, obstacles) || hits(c, spike)
	})
	if !ok {
		return fallback
	}
	return r
}

// SpawnSpike places the spike clear of the ball-start safety zone, obstacles
// and bonus (bonus may be nil). The safety zone is ballStart inflated by the
// configured margin. The spike shares the bonus band: the arena must be
// wider and taller than the larger of the two and x stays within the bonus range.
func (s *Spawner) SpawnSpike(w, h int, ballStart core.Rect, obstacles []core.Rect, bonus *core.Rect) core.Rect {
	size := s.spikeSize
	fallback := core.NewRect(0, 0, size, size)

	band, ok := s.band(w, h, max(size, s.bonus.Size))
	if !ok {
		return fallback
	}

	safe := s.SafetyZone(ballStart)
	r, ok := s.sample(func() core.Rect {
		return s.pick(band, size)
	}, func(c core.Rect) bool {
		return c.Intersects(safe) || hits(c, bonus) || core.IntersectsAny(c, obstacles)
	})
	if !ok {
		return fallback
	}
	return r
}

// SafetyZone returns the area around the ball's start the spike must avoid.
func (s *Spawner) SafetyZone(ballStart core.Rect) core.Rect {
	return ballStart.Inflate(s.spikeMargin)
}

// spawnBand is the origin range [x0, x0+xSpan) x [y0, y0+ySpan).
type spawnBand struct {
	xSpan     int
	y0, ySpan int
}

// band computes the origin range for an entity that needs span units of
// room in a w x h arena. The vertical band starts at the bonus min Y and spans
// half of what is left after the same margin is taken from the bottom.
func (s *Spawner) band(w, h, span int) (spawnBand, bool) {
	if w <= span || h <= span {
		return spawnBand{}, false
	}
	ySpan := (h - 2*s.bonus.MinY) / 2
	if ySpan <= 0 {
		return spawnBand{}, false
	}
	return spawnBand{xSpan: w - span, y0: s.bonus.MinY, ySpan: ySpan}, true
}

func (s *Spawner) pick(b spawnBand, size int) core.Rect {
	x := s.rng.Intn(b.xSpan)
	y := b.y0 + s.rng.Intn(b.ySpan)
	return core.NewRect(x, y, size, size)
}

// sample draws candidates until reject returns false or the cap is hit.
func (s *Spawner) sample(draw func() core.Rect, reject func(core.Rect) bool) (core.Rect, bool) {
	for i, n := 0, s.maxAttempts; i < n; i++ {
		c := draw()
		if !reject(c) {
			return c, true
		}
	}
	return core.Rect{}, false
}

func hits(r core.Rect, other *core.Rect) bool {
	return other != nil && r.Intersects(*other)
}
