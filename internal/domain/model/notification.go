package model

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ShareNotification is the message published when a list is shared. The
// "task" field carries the shared list's title; the wording is part of the
// email contract with recipients.
type ShareNotification struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Task      string    `json:"task"`
	SharedBy  string    `json:"shared_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewShareNotification builds a notification envelope with a fresh message id.
func NewShareNotification(email, task, sharedBy string) (*ShareNotification, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	return &ShareNotification{
		ID:        id,
		Email:     email,
		Task:      task,
		SharedBy:  sharedBy,
		CreatedAt: time.Now(),
	}, nil
}
