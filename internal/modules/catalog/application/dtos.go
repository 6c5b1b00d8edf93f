package application

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateSongRequest struct {
	Title    string     `json:"title"`
	ArtistID *uuid.UUID `json:"artistId"`
	AlbumID  *uuid.UUID `json:"albumId"`
	Duration int        `json:"duration"`
	FileURL  string     `json:"fileUrl"`
	Genre    string     `json:"genre"`
}

func (r *CreateSongRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Genre = strings.TrimSpace(r.Genre)
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Genre, validation.Length(0, 50)),
	)
}

// UpdateSongRequest is a partial update; nil fields are left unchanged.
type UpdateSongRequest struct {
	Title    *string    `json:"title"`
	ArtistID *uuid.UUID `json:"artistId"`
	AlbumID  *uuid.UUID `json:"albumId"`
	Duration *int       `json:"duration"`
	FileURL  *string    `json:"fileUrl"`
	Genre    *string    `json:"genre"`
}

func (r UpdateSongRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Genre, validation.Length(0, 50)),
	)
}

type CreateArtistRequest struct {
	Name    string `json:"name"`
	Bio     string `json:"bio"`
	Genre   string `json:"genre"`
	Picture string `json:"picture"`
}

func (r *CreateArtistRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
	)
}

type UpdateArtistRequest struct {
	Name    *string `json:"name"`
	Bio     *string `json:"bio"`
	Genre   *string `json:"genre"`
	Picture *string `json:"picture"`
}

func (r UpdateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
	)
}

type CreateAlbumRequest struct {
	Title       string     `json:"title"`
	ArtistID    *uuid.UUID `json:"artistId"`
	ReleaseDate string     `json:"releaseDate"`
	CoverArt    string     `json:"coverArt"`
	Genre       string     `json:"genre"`
}

func (r *CreateAlbumRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	)
}

type UpdateAlbumRequest struct {
	Title       *string    `json:"title"`
	ArtistID    *uuid.UUID `json:"artistId"`
	ReleaseDate *string    `json:"releaseDate"`
	CoverArt    *string    `json:"coverArt"`
	Genre       *string    `json:"genre"`
}

func (r UpdateAlbumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

type GenreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *GenreRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Description, validation.Length(0, 500)),
	)
}
