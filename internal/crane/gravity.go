package crane

// applyGravity moves every resting shape down one fall step, in container
// order. Each shape is tested against the positions the shapes before it
// already reached this tick. Shapes that would collide stay put; shapes that
// would pass the ground line land on it.
func (e *Engine) applyGravity() error {
	ground := e.cfg.GroundY
	for i := range e.world.Shapes {
		s := &e.world.Shapes[i]
		if s.Lifted {
			continue
		}
		nextY := s.Pos.Y + e.cfg.FallStep
		if nextY > ground {
			s.Pos.Y = ground
			continue
		}
		candidate := *s
		candidate.Pos.Y = nextY
		if e.blocked(candidate, i, true) {
			continue
		}
		s.Pos.Y = nextY
	}
	return nil
}
