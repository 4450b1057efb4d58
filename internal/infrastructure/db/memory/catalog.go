// Package memory holds the in-process backends: the static mock catalogs
// and a map-backed snapshot store.
package memory

import (
	"time"

	"github.com/thrive/wellness-api/internal/core/domain"
)

// Catalog is the static mock data store. It is read-only after
// construction, so concurrent readers need no locking.
type Catalog struct {
	therapists []domain.User
	blogs      []domain.BlogPost
	fitness    []domain.FitnessContent
	patients   []domain.User
	templates  []domain.MemeTemplate
	quotes     []string
	now        func() time.Time
}

// NewCatalog returns the seeded catalog. now anchors the fixtures that are
// relative to the current time (appointments, recent messages); nil means
// time.Now.
func NewCatalog(now func() time.Time) *Catalog {
	if now == nil {
		now = time.Now
	}
	return &Catalog{
		therapists: seedTherapists(),
		blogs:      seedBlogs(),
		fitness:    seedFitness(),
		patients:   seedPatients(),
		templates:  seedMemeTemplates(),
		quotes:     seedQuotes(),
		now:        now,
	}
}

func (c *Catalog) Therapists() []domain.User { return cloneUsers(c.therapists) }

func (c *Catalog) Patients() []domain.User { return cloneUsers(c.patients) }

func (c *Catalog) BlogPosts() []domain.BlogPost {
	out := make([]domain.BlogPost, len(c.blogs))
	for i, b := range c.blogs {
		out[i] = b.Clone()
	}
	return out
}

func (c *Catalog) FitnessContent() []domain.FitnessContent {
	out := make([]domain.FitnessContent, len(c.fitness))
	for i, f := range c.fitness {
		out[i] = f.Clone()
	}
	return out
}

func (c *Catalog) MemeTemplates() []domain.MemeTemplate {
	return append([]domain.MemeTemplate(nil), c.templates...)
}

func (c *Catalog) Quotes() []string { return append([]string(nil), c.quotes...) }

// JournalFixtures returns the two canned entries. Writes are never merged
// back in, so every call returns the same pair.
func (c *Catalog) JournalFixtures(userID string) []domain.JournalEntry {
	first := time.Date(2023, time.July, 15, 14, 30, 0, 0, time.UTC)
	second := time.Date(2023, time.July, 12, 10, 15, 0, 0, time.UTC)
	return []domain.JournalEntry{
		{
			ID:        "journal-1",
			UserID:    userID,
			Title:     "Today was challenging",
			Content:   "I felt anxious during the presentation but used breathing techniques to calm myself.",
			Mood:      domain.MoodAnxious,
			CreatedAt: first,
			UpdatedAt: first,
		},
		{
			ID:        "journal-2",
			UserID:    userID,
			Title:     "Progress with therapy",
			Content:   "Had a great session today. Feeling more optimistic about things.",
			Mood:      domain.MoodHappy,
			CreatedAt: second,
			UpdatedAt: second,
		},
	}
}

// ChatTranscript returns the canned three-message conversation.
func (c *Catalog) ChatTranscript(userID, recipientID string) []domain.ChatMessage {
	at := func(min int) time.Time {
		return time.Date(2023, time.July, 15, 9, min, 0, 0, time.UTC)
	}
	return []domain.ChatMessage{
		{
			ID:         "msg-1",
			SenderID:   recipientID,
			ReceiverID: userID,
			Content:    "Hello, how are you feeling today?",
			Timestamp:  at(30),
			Read:       true,
		},
		{
			ID:         "msg-2",
			SenderID:   userID,
			ReceiverID: recipientID,
			Content:    "I'm doing better than yesterday. The exercises are helping.",
			Timestamp:  at(32),
			Read:       true,
		},
		{
			ID:         "msg-3",
			SenderID:   recipientID,
			ReceiverID: userID,
			Content:    "That's great to hear! Would you like to discuss any specific challenges?",
			Timestamp:  at(33),
			Read:       true,
		},
	}
}

func (c *Catalog) Appointments() []domain.Appointment {
	now := c.now().UTC()
	return []domain.Appointment{
		{
			ID:           "apt-1",
			PatientID:    "patient-1",
			PatientName:  "Emily Chen",
			PatientImage: "https://randomuser.me/api/portraits/women/33.jpg",
			Date:         now.Add(time.Hour),
			Duration:     60,
			Type:         "video",
		},
		{
			ID:           "apt-2",
			PatientID:    "patient-2",
			PatientName:  "Michael Brown",
			PatientImage: "https://randomuser.me/api/portraits/men/54.jpg",
			Date:         now.Add(24 * time.Hour),
			Duration:     45,
			Type:         "chat",
		},
	}
}

func (c *Catalog) RecentPatientMessages(therapistID string) []domain.PatientMessage {
	now := c.now().UTC()
	byID := make(map[string]domain.User, len(c.patients))
	for _, p := range c.patients {
		byID[p.ID] = p
	}
	return []domain.PatientMessage{
		{
			Patient: byID["patient-1"].Clone(),
			Message: domain.ChatMessage{
				ID:         "msg-1",
				SenderID:   "patient-1",
				ReceiverID: therapistID,
				Content:    "Thank you for yesterday's session, it really helped with my anxiety.",
				Timestamp:  now.Add(-time.Hour),
			},
		},
		{
			Patient: byID["patient-3"].Clone(),
			Message: domain.ChatMessage{
				ID:         "msg-2",
				SenderID:   "patient-3",
				ReceiverID: therapistID,
				Content:    "I've been practicing the mindfulness exercises. When can we schedule our next session?",
				Timestamp:  now.Add(-2 * time.Hour),
				Read:       true,
			},
		},
	}
}

func cloneUsers(in []domain.User) []domain.User {
	out := make([]domain.User, len(in))
	for i, u := range in {
		out[i] = u.Clone()
	}
	return out
}

func rating(v float64) *float64 { return &v }
