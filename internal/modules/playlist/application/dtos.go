package application

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
	CoverImage  string `json:"coverImage"`
}

func (r *CreatePlaylistRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// UpdatePlaylistRequest changes metadata only; membership has its own
// operations.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
	CoverImage  *string `json:"coverImage"`
}

func (r UpdatePlaylistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

type BatchAddRequest struct {
	SongIDs []string `json:"songIds"`
}

type CreateEntryRequest struct {
	SongID   string `json:"songId"`
	Position int    `json:"position"`
}

func (r CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SongID, validation.Required),
		validation.Field(&r.Position, validation.Min(0)),
	)
}

type UpdateEntryRequest struct {
	Position int `json:"position"`
}

func (r UpdateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.Position, validation.Min(0)))
}
