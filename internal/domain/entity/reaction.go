// Package entity contains the core business objects of the project.
package entity

// ReactionKind is the type of reaction a user can leave on a profile.
type ReactionKind string

const (
	// ReactionLike marks approval.
	ReactionLike ReactionKind = "like"
	// ReactionDislike marks disapproval.
	ReactionDislike ReactionKind = "dislike"
)

// IsValid checks if the ReactionKind is a valid value.
func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLike, ReactionDislike:
		return true
	default:
		return false
	}
}

// ReactionCounts is the server's authoritative tally after a reaction
// mutation. The client replaces its counters with these wholesale.
type ReactionCounts struct {
	Likes    int
	Dislikes int
}
