package bounce

// Snapshot contains the complete engine state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Phase  int
	Score  int
	Level  int
	BallX  int
	BallY  int
	BallDX int
	BallDY int

	PaddleX int

	// Each rect is 4 ints: X, Y, W, H
	ObstacleData []int
	Bonus        [4]int
	Spike        [4]int

	RNGState uint64
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	obstacleData := make([]int, 0, len(e.obstacles)*4)
	for _, o := range e.obstacles {
		obstacleData = append(obstacleData, o.X, o.Y, o.W, o.H)
	}

	return Snapshot{
		Tick:         e.ticks,
		Phase:        int(e.phase),
		Score:        e.score,
		Level:        e.level,
		BallX:        e.ball.X,
		BallY:        e.ball.Y,
		BallDX:       e.ball.DX,
		BallDY:       e.ball.DY,
		PaddleX:      e.paddle.X,
		ObstacleData: obstacleData,
		Bonus:        [4]int{e.bonus.X, e.bonus.Y, e.bonus.W, e.bonus.H},
		Spike:        [4]int{e.spike.X, e.spike.Y, e.spike.W, e.spike.H},
		RNGState:     e.spawner.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Score, snap.Level,
		snap.BallX, snap.BallY, snap.BallDX, snap.BallDY,
		snap.PaddleX,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Bonus {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Spike {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
