package searcher

import "capture/game"

// StrideSampler keeps every k-th child, starting with the first, where k grows
// with the branching factor. Skipped children are never searched, so the
// result may miss the true minimax choice.
type StrideSampler struct{}

func (StrideSampler) Stride(n int) int {
	switch {
	case n >= WIDE_BRANCHING:
		return WIDE_STRIDE
	case n >= MEDIUM_BRANCHING:
		return MEDIUM_STRIDE
	}
	return 1
}

func (s StrideSampler) Sample(children []game.Board) []game.Board {
	stride := s.Stride(len(children))
	if stride == 1 {
		return children
	}
	sampled := make([]game.Board, 0, (len(children)+stride-1)/stride)
	for i := 0; i < len(children); i += stride {
		sampled = append(sampled, children[i])
	}
	return sampled
}

// FullSampler searches every child.
type FullSampler struct{}

func (FullSampler) Sample(children []game.Board) []game.Board {
	return children
}

// NewSampler returns the stride sampler when throttling, the full sampler otherwise.
func NewSampler(throttle bool) Sampler {
	if throttle {
		return StrideSampler{}
	}
	return FullSampler{}
}
