package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/api/metrics"
	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/pkg/logger"
)

// Simulated network latency per call, before scaling.
const (
	delayTherapists      = 500 * time.Millisecond
	delayTherapistByID   = 300 * time.Millisecond
	delayRecommended     = 800 * time.Millisecond
	delayJournalEntries  = 400 * time.Millisecond
	delaySaveJournal     = 300 * time.Millisecond
	delayChatMessages    = 300 * time.Millisecond
	delaySendChat        = 200 * time.Millisecond
	delayBlogPosts       = 500 * time.Millisecond
	delayBlogPostByID    = 300 * time.Millisecond
	delayFitnessContent  = 400 * time.Millisecond
	delayFitnessByID     = 300 * time.Millisecond
	delayFitnessCategory = 400 * time.Millisecond
)

const matchReasonFormat = "Based on your profile and needs, our GNN algorithm found a strong match with %s's expertise."

// MockAPI stands in for the remote wellness service on top of the static
// catalog.
type MockAPI struct {
	catalog ports.CatalogRepository
	ranker  ports.MatchRanker
	scale   float64
	now     func() time.Time
	newID   func(prefix string) string
	logger  zerolog.Logger
}

var _ ports.CatalogAPI = (*MockAPI)(nil)

type MockAPIOption func(*MockAPI)

// WithLatencyScale multiplies every simulated delay. Zero disables them.
func WithLatencyScale(scale float64) MockAPIOption {
	return func(a *MockAPI) { a.scale = scale }
}

func WithClock(now func() time.Time) MockAPIOption {
	return func(a *MockAPI) { a.now = now }
}

func WithIDGenerator(fn func(prefix string) string) MockAPIOption {
	return func(a *MockAPI) { a.newID = fn }
}

func NewMockAPI(catalog ports.CatalogRepository, ranker ports.MatchRanker, log zerolog.Logger, opts ...MockAPIOption) *MockAPI {
	a := &MockAPI{
		catalog: catalog,
		ranker:  ranker,
		scale:   1,
		now:     time.Now,
		newID:   newID,
		logger:  logger.Component(log, "mock_api"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *MockAPI) GetTherapists(ctx context.Context) ([]domain.User, error) {
	done := a.begin("get_therapists")
	if err := a.wait(ctx, delayTherapists); err != nil {
		return nil, done(err)
	}
	out := a.catalog.Therapists()
	done(nil)
	return out, nil
}

func (a *MockAPI) GetTherapistByID(ctx context.Context, id string) (*domain.User, error) {
	done := a.begin("get_therapist_by_id")
	if err := a.wait(ctx, delayTherapistByID); err != nil {
		return nil, done(err)
	}
	for _, t := range a.catalog.Therapists() {
		if t.ID == id {
			done(nil)
			return &t, nil
		}
	}
	return nil, done(fmt.Errorf("therapist %q: %w", id, domain.ErrTherapistNotFound))
}

func (a *MockAPI) GetRecommendedTherapists(ctx context.Context, userID string) ([]domain.TherapistMatch, error) {
	done := a.begin("get_recommended_therapists")
	if err := a.wait(ctx, delayRecommended); err != nil {
		return nil, done(err)
	}
	therapists := a.catalog.Therapists()
	out := make([]domain.TherapistMatch, 0, len(therapists))
	for _, t := range therapists {
		score := a.ranker.Score(userID, t)
		metrics.MatchScores.Observe(score)
		out = append(out, domain.TherapistMatch{
			TherapistID: t.ID,
			MatchScore:  score,
			MatchReason: fmt.Sprintf(matchReasonFormat, t.Name),
		})
	}
	done(nil)
	return out, nil
}

func (a *MockAPI) GetJournalEntries(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	done := a.begin("get_journal_entries")
	if err := a.wait(ctx, delayJournalEntries); err != nil {
		return nil, done(err)
	}
	out := a.catalog.JournalFixtures(userID)
	done(nil)
	return out, nil
}

// SaveJournalEntry synthesizes the stored entry. Nothing is kept, so a later
// GetJournalEntries does not include it.
func (a *MockAPI) SaveJournalEntry(ctx context.Context, draft domain.JournalDraft) (*domain.JournalEntry, error) {
	done := a.begin("save_journal_entry")
	if err := a.wait(ctx, delaySaveJournal); err != nil {
		return nil, done(err)
	}
	now := a.now().UTC()
	mood := draft.Mood
	if mood == "" {
		mood = domain.MoodNeutral
	}
	entry := &domain.JournalEntry{
		ID:        a.newID("journal"),
		UserID:    draft.UserID,
		Title:     draft.Title,
		Content:   draft.Content,
		Mood:      mood,
		CreatedAt: now,
		UpdatedAt: now,
	}
	done(nil)
	a.logger.Info().Str("entry_id", entry.ID).Str("user_id", entry.UserID).Str("mood", string(mood)).Msg("journal entry saved")
	return entry, nil
}

func (a *MockAPI) GetChatMessages(ctx context.Context, userID, recipientID string) ([]domain.ChatMessage, error) {
	done := a.begin("get_chat_messages")
	if err := a.wait(ctx, delayChatMessages); err != nil {
		return nil, done(err)
	}
	out := a.catalog.ChatTranscript(userID, recipientID)
	done(nil)
	return out, nil
}

func (a *MockAPI) SendChatMessage(ctx context.Context, msg domain.OutgoingMessage) (*domain.ChatMessage, error) {
	done := a.begin("send_chat_message")
	if err := a.wait(ctx, delaySendChat); err != nil {
		return nil, done(err)
	}
	sent := &domain.ChatMessage{
		ID:         a.newID("msg"),
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		Timestamp:  a.now().UTC(),
		Read:       false,
	}
	done(nil)
	a.logger.Info().Str("message_id", sent.ID).Str("sender_id", sent.SenderID).Str("receiver_id", sent.ReceiverID).Msg("chat message sent")
	return sent, nil
}

func (a *MockAPI) GetBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	done := a.begin("get_blog_posts")
	if err := a.wait(ctx, delayBlogPosts); err != nil {
		return nil, done(err)
	}
	out := a.catalog.BlogPosts()
	done(nil)
	return out, nil
}

func (a *MockAPI) GetBlogPostByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	done := a.begin("get_blog_post_by_id")
	if err := a.wait(ctx, delayBlogPostByID); err != nil {
		return nil, done(err)
	}
	for _, p := range a.catalog.BlogPosts() {
		if p.ID == id {
			done(nil)
			return &p, nil
		}
	}
	return nil, done(fmt.Errorf("blog post %q: %w", id, domain.ErrBlogPostNotFound))
}

func (a *MockAPI) GetFitnessContent(ctx context.Context) ([]domain.FitnessContent, error) {
	done := a.begin("get_fitness_content")
	if err := a.wait(ctx, delayFitnessContent); err != nil {
		return nil, done(err)
	}
	out := a.catalog.FitnessContent()
	done(nil)
	return out, nil
}

func (a *MockAPI) GetFitnessContentByID(ctx context.Context, id string) (*domain.FitnessContent, error) {
	done := a.begin("get_fitness_content_by_id")
	if err := a.wait(ctx, delayFitnessByID); err != nil {
		return nil, done(err)
	}
	for _, c := range a.catalog.FitnessContent() {
		if c.ID == id {
			done(nil)
			return &c, nil
		}
	}
	return nil, done(fmt.Errorf("fitness content %q: %w", id, domain.ErrFitnessContentNotFound))
}

// GetFitnessContentByCategory matches the category case-insensitively.
func (a *MockAPI) GetFitnessContentByCategory(ctx context.Context, category string) ([]domain.FitnessContent, error) {
	done := a.begin("get_fitness_content_by_category")
	if err := a.wait(ctx, delayFitnessCategory); err != nil {
		return nil, done(err)
	}
	out := []domain.FitnessContent{}
	for _, c := range a.catalog.FitnessContent() {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	done(nil)
	return out, nil
}

// wait blocks for the scaled delay or until ctx is done.
func (a *MockAPI) wait(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * a.scale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// begin starts timing op. The returned func records the outcome and hands
// err back so call sites can return it directly.
func (a *MockAPI) begin(op string) func(error) error {
	start := time.Now()
	return func(err error) error {
		elapsed := time.Since(start)
		metrics.MockCallDuration.WithLabelValues(op).Observe(elapsed.Seconds())
		metrics.MockCallsTotal.WithLabelValues(op, callResult(err)).Inc()
		a.logger.Debug().Str("operation", op).Dur("elapsed", elapsed).Err(err).Msg("mock call")
		return err
	}
}

func callResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "not_found"
	}
}
