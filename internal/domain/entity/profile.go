// Package entity contains the core business objects of the project.
package entity

import "time"

// Profile is the gaming identity attached to an account, distinct from the
// User record. An account has zero or one profile; absence is a normal state
// for freshly verified users and drives the create-profile gate.
type Profile struct {
	ID            string              // The backend's unique identifier for the profile.
	OwnerID       string              // ID of the owning User.
	Username      string              // The public gamer tag.
	Bio           string              // Free-form description.
	AvatarURL     string              // Avatar image location.
	Address       string              // Display location, optional.
	Games         []FavoriteGame      // Ordered favorite games list.
	TopCharacters []FavoriteCharacter // Ordered favorite characters list.
	Likes         int                 // Like count as last reported by the server.
	Dislikes      int                 // Dislike count as last reported by the server.
	CreatedAt     time.Time           // Timestamp of profile creation.
}

// FavoriteGame is one entry in a profile's game library.
type FavoriteGame struct {
	Name     string // Game title.
	CoverURL string // Cover image location.
	Platform string // Platform the owner plays on, e.g. "pc", "ps5".
	Skill    string // Self-reported skill tag, e.g. "casual", "competitive".
}

// FavoriteCharacter is one entry in a profile's character roster.
type FavoriteCharacter struct {
	Name     string // Character name.
	ImageURL string // Character image location.
}
