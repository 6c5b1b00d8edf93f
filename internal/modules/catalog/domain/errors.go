package domain

import "errors"

var (
	ErrSongNotFound       = errors.New("song not found")
	ErrArtistNotFound     = errors.New("artist not found")
	ErrAlbumNotFound      = errors.New("album not found")
	ErrGenreNotFound      = errors.New("genre not found")
	ErrGenreAlreadyExists = errors.New("genre already exists")
	ErrNoAudioFile        = errors.New("song has no audio file")
)
