package service

import (
	"math/rand/v2"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
)

// RandomRanker scores every therapist independently and uniformly in
// [MinMatchScore, MaxMatchScore). It ignores both the user and the
// therapist; a real model would plug in behind ports.MatchRanker.
type RandomRanker struct {
	rnd func() float64
}

var _ ports.MatchRanker = (*RandomRanker)(nil)

// NewRandomRanker uses rnd as its source of values in [0, 1). A nil rnd
// falls back to math/rand/v2.
func NewRandomRanker(rnd func() float64) *RandomRanker {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &RandomRanker{rnd: rnd}
}

func (r *RandomRanker) Score(string, domain.User) float64 {
	return domain.MinMatchScore + (domain.MaxMatchScore-domain.MinMatchScore)*r.rnd()
}
