package domain

import "errors"

var (
	ErrLikeNotFound         = errors.New("like not found")
	ErrFollowNotFound       = errors.New("follow not found")
	ErrAlreadyLiked         = errors.New("target already liked")
	ErrAlreadyFollowing     = errors.New("already following")
	ErrInvalidTargetType    = errors.New("targetType must be song or playlist")
	ErrInvalidFollowingType = errors.New("followingType must be user or artist")
	ErrTargetNotFound       = errors.New("like target does not exist")
)
