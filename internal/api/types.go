package api

import (
	"time"

	"arena/internal/domain/entity"
)

// userPayload is the backend's wire shape for an account. The backend has
// shipped both "isEmailVerified" and the older "isVerified" spelling, so
// both are accepted.
type userPayload struct {
	ID              string     `json:"_id"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	IsEmailVerified *bool      `json:"isEmailVerified"`
	IsVerified      *bool      `json:"isVerified"`
	Plan            string     `json:"plan"`
	PlanExpiresAt   *time.Time `json:"planExpiresAt"`
	IsBlocked       bool       `json:"isBlocked"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (p *userPayload) toEntity() *entity.User {
	verified := false
	if p.IsEmailVerified != nil {
		verified = *p.IsEmailVerified
	} else if p.IsVerified != nil {
		verified = *p.IsVerified
	}

	plan := entity.Plan(p.Plan)
	if !plan.IsValid() {
		plan = entity.PlanFree
	}

	return &entity.User{
		ID:              p.ID,
		Email:           p.Email,
		Role:            entity.Role(p.Role),
		IsEmailVerified: verified,
		Plan:            plan,
		PlanExpiresAt:   p.PlanExpiresAt,
		IsBlocked:       p.IsBlocked,
		CreatedAt:       p.CreatedAt,
	}
}

type gamePayload struct {
	Name     string `json:"name"`
	CoverURL string `json:"coverUrl"`
	Platform string `json:"platform"`
	Skill    string `json:"skill"`
}

type characterPayload struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type profilePayload struct {
	ID            string             `json:"_id"`
	User          string             `json:"user"`
	Username      string             `json:"username"`
	Bio           string             `json:"bio"`
	Avatar        string             `json:"avatar"`
	Address       string             `json:"address"`
	Games         []gamePayload      `json:"games"`
	TopCharacters []characterPayload `json:"topCharacters"`
	Likes         int                `json:"likes"`
	Dislikes      int                `json:"dislikes"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (p *profilePayload) toEntity() *entity.Profile {
	games := make([]entity.FavoriteGame, 0, len(p.Games))
	for _, g := range p.Games {
		games = append(games, entity.FavoriteGame{
			Name:     g.Name,
			CoverURL: g.CoverURL,
			Platform: g.Platform,
			Skill:    g.Skill,
		})
	}

	characters := make([]entity.FavoriteCharacter, 0, len(p.TopCharacters))
	for _, c := range p.TopCharacters {
		characters = append(characters, entity.FavoriteCharacter{
			Name:     c.Name,
			ImageURL: c.ImageURL,
		})
	}

	return &entity.Profile{
		ID:            p.ID,
		OwnerID:       p.User,
		Username:      p.Username,
		Bio:           p.Bio,
		AvatarURL:     p.Avatar,
		Address:       p.Address,
		Games:         games,
		TopCharacters: characters,
		Likes:         p.Likes,
		Dislikes:      p.Dislikes,
		CreatedAt:     p.CreatedAt,
	}
}

func profilesToEntities(payloads []profilePayload) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(payloads))
	for i := range payloads {
		profiles = append(profiles, payloads[i].toEntity())
	}

	return profiles
}

type commentPayload struct {
	ID             string    `json:"_id"`
	Profile        string    `json:"profile"`
	AuthorUsername string    `json:"authorUsername"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (p *commentPayload) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:             p.ID,
		ProfileID:      p.Profile,
		AuthorUsername: p.AuthorUsername,
		Body:           p.Body,
		CreatedAt:      p.CreatedAt,
	}
}

// Pagination is the backend's page metadata for list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
