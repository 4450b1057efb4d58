package domain

import "time"

// ChatMessage is a single message between a patient and a therapist.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// OutgoingMessage carries the caller-supplied fields of a message to send.
type OutgoingMessage struct {
	SenderID   string
	ReceiverID string
	Content    string
}

// Appointment is an upcoming session shown on the therapist home screen.
type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	PatientName  string    `json:"patientName"`
	PatientImage string    `json:"patientImage,omitempty"`
	Date         time.Time `json:"date"`
	Duration     int       `json:"duration"`
	Type         string    `json:"type"`
}

// PatientMessage pairs a patient with the latest message they sent.
type PatientMessage struct {
	Patient User        `json:"patient"`
	Message ChatMessage `json:"message"`
}
