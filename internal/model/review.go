package model

import "github.com/google/uuid"

// Review is attached to a hidden gem but never interpreted by the gem
// repository; it stores and returns reviews as given.
type Review struct {
	ID      uuid.UUID `json:"id"`
	Author  string    `json:"author"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}
