package logging

// ProgressSampler paces "processed i/n" notices so long runs report at a
// fixed record cadence instead of once per record.
type ProgressSampler struct {
	every int
	last  int
}

// NewProgressSampler constructs a sampler that emits on every multiple of
// every. A value <= 0 disables progress notices.
func NewProgressSampler(every int) *ProgressSampler {
	if every < 0 {
		every = 0
	}
	return &ProgressSampler{every: every}
}

// ShouldLog reports whether the notice for the done-th record (1-based)
// should be logged. Each count is reported at most once.
func (s *ProgressSampler) ShouldLog(done int) bool {
	if s == nil || s.every == 0 || done <= 0 {
		return false
	}
	if done%s.every != 0 || done <= s.last {
		return false
	}
	s.last = done
	return true
}
