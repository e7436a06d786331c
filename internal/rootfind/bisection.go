package rootfind

// Bisect halves [a, b] until its width is at most the configured epsilon and
// returns the midpoint of the final bracket. f(a) and f(b) must have strictly
// opposite signs. When f(left)*f(mid) is exactly zero the left end moves to
// mid, so a midpoint that hits a root exactly does not stop the search.
func (s *Solver) Bisect(f Func, a, b float64) (*Result, error) {
	if err := s.cfg.validateEpsilon(); err != nil {
		return nil, fail(MethodBisection, 0, a, err)
	}

	// NaN products also fail here.
	if !(f(a)*f(b) < 0) {
		return nil, fail(MethodBisection, 0, a, ErrInvalidBracket)
	}

	left, right := a, b
	if left > right {
		left, right = right, left
	}

	step := 0
	for right-left > s.cfg.Epsilon {
		mid := (left + right) / 2
		// Out of float64 resolution: the bracket can no longer shrink.
		if mid <= left || mid >= right {
			break
		}

		fmid := f(mid)
		if f(left)*fmid < 0 {
			right = mid
		} else {
			left = mid
		}

		step++
		s.notify(Iteration{Method: MethodBisection, Step: step, X: mid, FX: fmid, Delta: right - left})
	}

	root := (left + right) / 2
	return &Result{
		Method:     MethodBisection,
		Root:       root,
		Residual:   f(root),
		Iterations: step,
	}, nil
}
