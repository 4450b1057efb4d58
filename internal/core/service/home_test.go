package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/infrastructure/db/memory"
)

// scriptedRanker hands out scores keyed by therapist id.
type scriptedRanker map[string]float64

func (r scriptedRanker) Score(_ string, t domain.User) float64 { return r[t.ID] }

func newTestHome(ranker scriptedRanker) *HomeService {
	catalog := memory.NewCatalog(func() time.Time { return testNow })
	api := NewMockAPI(catalog, ranker, zerolog.Nop(), WithLatencyScale(0))
	return NewHomeService(api, catalog, zerolog.Nop())
}

func TestHomeService_PatientHome(t *testing.T) {
	svc := newTestHome(scriptedRanker{"therapist-1": 0.72, "therapist-3": 0.97, "therapist-2": 0.8, "therapist-4": 0.75})

	home, err := svc.PatientHome(context.Background(), &domain.User{ID: "user-1", Name: "Alex Kim"})
	if err != nil {
		t.Fatalf("PatientHome returned error: %v", err)
	}
	if home.Greeting != "Hello, Alex" {
		t.Fatalf("unexpected greeting: %q", home.Greeting)
	}
	if home.TopMatch == nil || home.TopMatch.Therapist.ID != "therapist-3" {
		t.Fatalf("expected therapist-3 as top match, got %+v", home.TopMatch)
	}
	if len(home.Blogs) != 3 || len(home.Fitness) != 3 {
		t.Fatalf("expected 3 blogs and 3 fitness items, got %d/%d", len(home.Blogs), len(home.Fitness))
	}
}

func TestHomeService_PatientHome_Cancelled(t *testing.T) {
	catalog := memory.NewCatalog(nil)
	api := NewMockAPI(catalog, scriptedRanker{}, zerolog.Nop())
	svc := NewHomeService(api, catalog, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.PatientHome(ctx, &domain.User{ID: "u"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHomeService_TherapistHome(t *testing.T) {
	svc := newTestHome(scriptedRanker{})

	home := svc.TherapistHome(&domain.User{ID: "therapist-9", Name: "Dr. Lee"})
	if home.Greeting != "Hello, Dr." {
		t.Fatalf("unexpected greeting: %q", home.Greeting)
	}
	if len(home.Patients) != 3 || len(home.Appointments) != 2 || len(home.RecentMessages) != 2 {
		t.Fatalf("unexpected fixtures: %+v", home)
	}
	if home.RecentMessages[0].Message.ReceiverID != "therapist-9" {
		t.Fatalf("messages not addressed to the therapist: %+v", home.RecentMessages[0])
	}
	if !home.Appointments[0].Date.After(testNow) {
		t.Fatalf("appointments should be upcoming")
	}
}

func TestHomeService_Directory(t *testing.T) {
	svc := newTestHome(scriptedRanker{"therapist-1": 0.9, "therapist-2": 0.95})

	ranked, err := svc.Directory(context.Background(), "user-1", "anxiety")
	if err != nil {
		t.Fatalf("Directory returned error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 anxiety specialists, got %d", len(ranked))
	}
	if ranked[0].Therapist.ID != "therapist-2" {
		t.Fatalf("expected highest score first, got %s", ranked[0].Therapist.ID)
	}
}

func TestHomeService_Recommended(t *testing.T) {
	svc := newTestHome(scriptedRanker{"therapist-4": 0.99, "therapist-1": 0.7})

	matches, err := svc.Recommended(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recommended returned error: %v", err)
	}
	if matches[0].TherapistID != "therapist-4" || matches[len(matches)-1].MatchScore > matches[0].MatchScore {
		t.Fatalf("matches not sorted: %+v", matches)
	}
}
