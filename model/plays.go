package model

import "github.com/google/uuid"

type Play struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	PosterURL   string    `json:"poster_url"`

	// Performances come back ordered by date ascending; the client keeps the
	// server's order.
	Performances []Performance `json:"performances"`
}
