package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thrive/wellness-api/internal/core/domain"
)

// SearchBlogPosts keeps the posts whose title, content or any tag contains
// query, case-insensitively. A non-empty tag additionally requires an exact
// case-insensitive tag match.
func SearchBlogPosts(posts []domain.BlogPost, query, tag string) []domain.BlogPost {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if q != "" && !blogMatches(p, q) {
			continue
		}
		if tag != "" && !slices.ContainsFunc(p.Tags, func(t string) bool { return strings.EqualFold(t, tag) }) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func blogMatches(p domain.BlogPost, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// BlogTags returns every distinct tag lower-cased, in first-seen order.
func BlogTags(posts []domain.BlogPost) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range posts {
		for _, t := range p.Tags {
			t = strings.ToLower(t)
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// SearchTherapists keeps the therapists whose name or any specialization
// contains query, case-insensitively.
func SearchTherapists(therapists []domain.User, query string) []domain.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return therapists
	}
	out := make([]domain.User, 0, len(therapists))
	for _, t := range therapists {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			slices.ContainsFunc(t.Specializations, func(s string) bool { return strings.Contains(strings.ToLower(s), q) }) {
			out = append(out, t)
		}
	}
	return out
}

// SortMatches orders matches by score, highest first. Ties keep their
// incoming order.
func SortMatches(matches []domain.TherapistMatch) {
	slices.SortStableFunc(matches, func(a, b domain.TherapistMatch) int {
		return cmp.Compare(b.MatchScore, a.MatchScore)
	})
}

// RankedTherapist is a therapist joined with its match.
type RankedTherapist struct {
	Therapist domain.User            `json:"therapist"`
	Match     *domain.TherapistMatch `json:"match,omitempty"`
}

// RankTherapists joins therapists with their matches and orders them by
// score, highest first. Therapists without a match sort last.
func RankTherapists(therapists []domain.User, matches []domain.TherapistMatch) []RankedTherapist {
	byID := make(map[string]domain.TherapistMatch, len(matches))
	for _, m := range matches {
		byID[m.TherapistID] = m
	}
	out := make([]RankedTherapist, 0, len(therapists))
	for _, t := range therapists {
		r := RankedTherapist{Therapist: t}
		if m, ok := byID[t.ID]; ok {
			r.Match = &m
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b RankedTherapist) int {
		return cmp.Compare(score(b.Match), score(a.Match))
	})
	return out
}

func score(m *domain.TherapistMatch) float64 {
	if m == nil {
		return -1
	}
	return m.MatchScore
}

// JournalMonth is one month of entries, newest first.
type JournalMonth struct {
	Month   string                `json:"month"`
	Entries []domain.JournalEntry `json:"entries"`
}

// GroupJournalByMonth buckets entries by the month they were created in,
// labelled like "July 2023". Months run newest first, as do the entries
// inside each month.
func GroupJournalByMonth(entries []domain.JournalEntry) []JournalMonth {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.JournalEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	out := []JournalMonth{}
	for _, e := range sorted {
		label := e.CreatedAt.Format("January 2006")
		if n := len(out); n > 0 && out[n-1].Month == label {
			out[n-1].Entries = append(out[n-1].Entries, e)
			continue
		}
		out = append(out, JournalMonth{Month: label, Entries: []domain.JournalEntry{e}})
	}
	return out
}

// MoodCount is one row of a mood tally.
type MoodCount struct {
	Mood  domain.Mood `json:"mood"`
	Count int         `json:"count"`
}

// MoodTally counts entries per mood, listing every mood in domain.Moods
// order, including those with zero entries.
func MoodTally(entries []domain.JournalEntry) []MoodCount {
	counts := make(map[domain.Mood]int, len(domain.Moods))
	for _, e := range entries {
		counts[e.Mood]++
	}
	out := make([]MoodCount, 0, len(domain.Moods))
	for _, m := range domain.Moods {
		out = append(out, MoodCount{Mood: m, Count: counts[m]})
	}
	return out
}

// MostCommonMood returns the mood with the highest count. Ties go to the
// mood listed first in domain.Moods; no entries yields MoodNeutral.
func MostCommonMood(tally []MoodCount) domain.Mood {
	best, bestCount := domain.MoodNeutral, 0
	for _, c := range tally {
		if c.Count > bestCount {
			best, bestCount = c.Mood, c.Count
		}
	}
	return best
}

// FormatDuration renders d as minutes and zero-padded seconds, e.g. "3:07".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// TimeAgo labels t relative to now: "3d ago", "5h ago" or "12m ago".
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	case d >= time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d >= 0:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	default:
		return "just now"
	}
}
