package ports

import (
	"context"

	"github.com/thrive/wellness-api/internal/core/domain"
)

// CatalogRepository exposes the static in-memory catalogs. Accessors never
// fail and always return copies.
type CatalogRepository interface {
	Therapists() []domain.User
	BlogPosts() []domain.BlogPost
	FitnessContent() []domain.FitnessContent
	// JournalFixtures returns the canned entries stamped with userID.
	JournalFixtures(userID string) []domain.JournalEntry
	// ChatTranscript returns the canned conversation between the two ids.
	ChatTranscript(userID, recipientID string) []domain.ChatMessage
	Patients() []domain.User
	Appointments() []domain.Appointment
	RecentPatientMessages(therapistID string) []domain.PatientMessage
	MemeTemplates() []domain.MemeTemplate
	Quotes() []string
}

// CatalogAPI stands in for the remote wellness service. Every call blocks
// for an artificial latency and honours ctx cancellation. Lookups by id
// return the domain "not found" sentinel when nothing matches.
type CatalogAPI interface {
	GetTherapists(ctx context.Context) ([]domain.User, error)
	GetTherapistByID(ctx context.Context, id string) (*domain.User, error)
	// GetRecommendedTherapists returns one match per therapist in catalog
	// order. Sorting is the caller's job.
	GetRecommendedTherapists(ctx context.Context, userID string) ([]domain.TherapistMatch, error)

	GetJournalEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error)
	SaveJournalEntry(ctx context.Context, draft domain.JournalDraft) (*domain.JournalEntry, error)

	GetChatMessages(ctx context.Context, userID, recipientID string) ([]domain.ChatMessage, error)
	SendChatMessage(ctx context.Context, msg domain.OutgoingMessage) (*domain.ChatMessage, error)

	GetBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetBlogPostByID(ctx context.Context, id string) (*domain.BlogPost, error)

	GetFitnessContent(ctx context.Context) ([]domain.FitnessContent, error)
	GetFitnessContentByID(ctx context.Context, id string) (*domain.FitnessContent, error)
	GetFitnessContentByCategory(ctx context.Context, category string) ([]domain.FitnessContent, error)
}

// MatchRanker scores how well a therapist suits a user.
type MatchRanker interface {
	Score(userID string, therapist domain.User) float64
}
