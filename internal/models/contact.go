package models

import "time"

// ContactMessage is a single contact-form submission.
type ContactMessage struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	Message       string    `json:"message"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
