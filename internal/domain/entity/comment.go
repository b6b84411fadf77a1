// Package entity contains the core business objects of the project.
package entity

import "time"

// Comment is one message left on a profile. Append-mostly; the client only
// holds the latest list the server returned.
type Comment struct {
	ID             string    // The backend's unique identifier for the comment.
	ProfileID      string    // The profile the comment targets.
	AuthorUsername string    // Gamer tag of the author.
	Body           string    // Comment text.
	CreatedAt      time.Time // Timestamp of creation.
}
