package tips

import (
	"math/rand/v2"
	"sync"
)

const (
	MinSample = 4
	MaxSample = 6
)

var all = []string{
	"Stay hydrated! In space, your body doesn't signal thirst as effectively.",
	"Practice your space photography skills - the Earth looks stunning from orbit!",
	"Pack light, comfortable clothing. Remember that in zero-G, comfort is key.",
	"Prepare for space adaptation syndrome by practicing balance exercises before your trip.",
	"Bring a small memento to experience weightlessness with - it makes for a great memory.",
	"Don't forget to use sunscreen on space walks - solar radiation is much stronger without atmospheric protection.",
	"Join pre-flight orientation sessions to make the most of your space experience.",
	"Keep a space journal - you'll want to remember every detail of this once-in-a-lifetime experience.",
}

type TipsUseCase interface {
	Sample() []string
}

type Service struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewService seeds its generator from the runtime when rnd is nil.
func NewService(rnd *rand.Rand) *Service {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Service{rnd: rnd}
}

func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Sample returns between MinSample and MaxSample distinct tips in random order.
func (s *Service) Sample() []string {
	s.mu.Lock()
	n := MinSample + s.rnd.IntN(MaxSample-MinSample+1)
	s.mu.Unlock()
	return s.Random(n)
}

func (s *Service) Random(n int) []string {
	if n > len(all) {
		n = len(all)
	}
	if n <= 0 {
		return []string{}
	}
	s.mu.Lock()
	idx := s.rnd.Perm(len(all))[:n]
	s.mu.Unlock()
	out := make([]string, n)
	for i, j := range idx {
		out[i] = all[j]
	}
	return out
}

var _ TipsUseCase = (*Service)(nil)
