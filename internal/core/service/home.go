package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/pkg/logger"
)

const homePreviewSize = 3

// PatientHome is the landing screen for patients.
type PatientHome struct {
	Greeting string                  `json:"greeting"`
	TopMatch *RankedTherapist        `json:"topMatch,omitempty"`
	Blogs    []domain.BlogPost       `json:"blogs"`
	Fitness  []domain.FitnessContent `json:"fitness"`
}

// TherapistHome is the landing screen for therapists.
type TherapistHome struct {
	Greeting       string                  `json:"greeting"`
	Patients       []domain.User           `json:"patients"`
	Appointments   []domain.Appointment    `json:"appointments"`
	RecentMessages []domain.PatientMessage `json:"recentMessages"`
}

// HomeService assembles the landing screens and the therapist directory.
type HomeService struct {
	api     ports.CatalogAPI
	catalog ports.CatalogRepository
	logger  zerolog.Logger
}

func NewHomeService(api ports.CatalogAPI, catalog ports.CatalogRepository, log zerolog.Logger) *HomeService {
	return &HomeService{api: api, catalog: catalog, logger: logger.Component(log, "home")}
}

// PatientHome loads recommendations, blogs and fitness content concurrently.
// The first failure cancels the other loads.
func (s *HomeService) PatientHome(ctx context.Context, user *domain.User) (*PatientHome, error) {
	var (
		therapists []domain.User
		matches    []domain.TherapistMatch
		blogs      []domain.BlogPost
		fitness    []domain.FitnessContent
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		therapists, err = s.api.GetTherapists(ctx)
		return err
	})
	g.Go(func() (err error) {
		matches, err = s.api.GetRecommendedTherapists(ctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		blogs, err = s.api.GetBlogPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		fitness, err = s.api.GetFitnessContent(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load patient home: %w", err)
	}

	home := &PatientHome{
		Greeting: greeting(user),
		Blogs:    firstN(blogs, homePreviewSize),
		Fitness:  firstN(fitness, homePreviewSize),
	}
	if ranked := RankTherapists(therapists, matches); len(ranked) > 0 && ranked[0].Match != nil {
		home.TopMatch = &ranked[0]
	}
	return home, nil
}

// TherapistHome serves the static therapist fixtures.
func (s *HomeService) TherapistHome(user *domain.User) *TherapistHome {
	return &TherapistHome{
		Greeting:       greeting(user),
		Patients:       s.catalog.Patients(),
		Appointments:   s.catalog.Appointments(),
		RecentMessages: s.catalog.RecentPatientMessages(user.ID),
	}
}

// Directory lists therapists matching query, ranked by match score.
func (s *HomeService) Directory(ctx context.Context, userID, query string) ([]RankedTherapist, error) {
	var (
		therapists []domain.User
		matches    []domain.TherapistMatch
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		therapists, err = s.api.GetTherapists(ctx)
		return err
	})
	g.Go(func() (err error) {
		matches, err = s.api.GetRecommendedTherapists(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load therapist directory: %w", err)
	}

	ranked := RankTherapists(SearchTherapists(therapists, query), matches)
	s.logger.Debug().Str("query", query).Int("results", len(ranked)).Msg("therapist directory")
	return ranked, nil
}

// Recommended returns the current user's matches, highest score first.
func (s *HomeService) Recommended(ctx context.Context, userID string) ([]domain.TherapistMatch, error) {
	matches, err := s.api.GetRecommendedTherapists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}
	SortMatches(matches)
	return matches, nil
}

func greeting(user *domain.User) string {
	return "Hello, " + user.FirstName()
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
