package domain

import (
	"errors"
	"time"
)

var (
	ErrTherapistNotFound      = errors.New("therapist not found")
	ErrBlogPostNotFound       = errors.New("blog post not found")
	ErrFitnessContentNotFound = errors.New("fitness content not found")
)

// BlogPost is a read-only wellness article.
type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	CoverImage    string    `json:"coverImage"`
	PublishedDate time.Time `json:"publishedDate"`
	ReadTime      int       `json:"readTime"`
	Tags          []string  `json:"tags"`
}

// Clone returns a deep copy of p.
func (p BlogPost) Clone() BlogPost {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}

// Intensity grades how demanding a workout is.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// FitnessContent is a guided workout or practice. Duration is in minutes.
type FitnessContent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    int       `json:"duration"`
	Intensity   Intensity `json:"intensity"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Steps       []string  `json:"steps,omitempty"`
}

// Clone returns a deep copy of c.
func (c FitnessContent) Clone() FitnessContent {
	out := c
	if c.Steps != nil {
		out.Steps = append([]string(nil), c.Steps...)
	}
	return out
}

// WorkoutLength is the full length of the workout.
func (c FitnessContent) WorkoutLength() time.Duration {
	return time.Duration(c.Duration) * time.Minute
}

// FitnessCategory is one of the fixed browse categories.
type FitnessCategory struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// FitnessCategories are shown on the fitness landing screen in this order.
var FitnessCategories = []FitnessCategory{
	{Name: "Yoga", Icon: "🧘"},
	{Name: "Meditation", Icon: "🧠"},
	{Name: "Cardio", Icon: "🏃"},
	{Name: "Strength", Icon: "💪"},
}

// MemeTemplate is a base image for the meme creator.
type MemeTemplate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
