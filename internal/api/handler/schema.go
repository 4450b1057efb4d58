package handler

import (
	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/service"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name            string `json:"name"            validate:"required,notblank"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	UserType        string `json:"userType"        validate:"required,oneof=patient therapist"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// --- Profile ---

type profilePatchRequest struct {
	Name            *string   `json:"name"            validate:"omitempty,notblank"`
	Email           *string   `json:"email"           validate:"omitempty,email"`
	ProfileImage    *string   `json:"profileImage"    validate:"omitempty,url"`
	Bio             *string   `json:"bio"`
	Specializations *[]string `json:"specializations"`
}

// --- Therapists ---

type therapistDetailResponse struct {
	Therapist domain.User `json:"therapist"`
}

type directoryResponse struct {
	Query      string                    `json:"query,omitempty"`
	Therapists []service.RankedTherapist `json:"therapists"`
}

type recommendedResponse struct {
	Matches []domain.TherapistMatch `json:"matches"`
}

// --- Journal ---

type journalSummary struct {
	Total          int                 `json:"total"`
	MostCommonMood domain.Mood         `json:"mostCommonMood"`
	Moods          []service.MoodCount `json:"moods"`
}

type journalResponse struct {
	Entries []domain.JournalEntry  `json:"entries"`
	Summary journalSummary         `json:"summary"`
	Months  []service.JournalMonth `json:"months"`
}

type createJournalEntryRequest struct {
	Title   string `json:"title"   validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
	Mood    string `json:"mood"    validate:"omitempty,oneof=happy sad anxious calm angry neutral"`
}

// --- Chat / video ---

type chatResponse struct {
	Recipient domain.User          `json:"recipient"`
	Messages  []domain.ChatMessage `json:"messages"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,notblank"`
}

type videoCallResponse struct {
	Recipient domain.User `json:"recipient"`
	Status    string      `json:"status"`
}

// --- Blog ---

type blogListResponse struct {
	Posts []domain.BlogPost `json:"posts"`
	Tags  []string          `json:"tags"`
	Query string            `json:"query,omitempty"`
	Tag   string            `json:"tag,omitempty"`
}

// --- Fitness ---

type fitnessListResponse struct {
	Content    []domain.FitnessContent  `json:"content"`
	Categories []domain.FitnessCategory `json:"categories"`
}

type fitnessCategoryResponse struct {
	Category string                  `json:"category"`
	Content  []domain.FitnessContent `json:"content"`
}

// --- Story / meme ---

type storyItem struct {
	Post    domain.BlogPost `json:"post"`
	TimeAgo string          `json:"timeAgo"`
}

type storyCircle struct {
	TherapistID  string `json:"therapistId"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type storyResponse struct {
	Stories []storyItem   `json:"stories"`
	Circles []storyCircle `json:"circles"`
}

type memeResponse struct {
	Templates []domain.MemeTemplate `json:"templates"`
	Quote     string                `json:"quote"`
}

// --- Screens ---

type screenResponse struct {
	Screen  string   `json:"screen"`
	Title   string   `json:"title"`
	Actions []string `json:"actions,omitempty"`
}
