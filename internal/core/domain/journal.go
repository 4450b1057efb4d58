package domain

import (
	"errors"
	"fmt"
	"time"
)

// Mood is the single feeling attached to a journal entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
	MoodCalm    Mood = "calm"
	MoodAngry   Mood = "angry"
	MoodNeutral Mood = "neutral"
)

// Moods lists every mood in tally order.
var Moods = []Mood{MoodHappy, MoodSad, MoodAnxious, MoodCalm, MoodAngry, MoodNeutral}

var (
	ErrJournalEntryNotFound = errors.New("journal entry not found")
	ErrInvalidMood          = errors.New("invalid mood")
)

// ParseMood converts s to a Mood. The empty string maps to MoodNeutral.
func ParseMood(s string) (Mood, error) {
	if s == "" {
		return MoodNeutral, nil
	}
	for _, m := range Moods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMood, s)
}

// JournalEntry is one dated reflection written by a user.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JournalDraft carries the caller-supplied fields of a new entry.
type JournalDraft struct {
	UserID  string
	Title   string
	Content string
	Mood    Mood
}
