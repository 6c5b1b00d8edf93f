package domain

import "errors"

var (
	ErrPlaylistNotFound       = errors.New("playlist not found")
	ErrEntryNotFound          = errors.New("playlist entry not found")
	ErrNotOwner               = errors.New("only the owner can modify this playlist")
	ErrNoSongsProvided        = errors.New("No songs provided")
	ErrVersionConflict        = errors.New("playlist was modified concurrently")
	ErrConcurrentModification = errors.New("playlist is being modified concurrently, try again")
)
