package application

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateLikeRequest struct {
	TargetID   string `json:"targetId"`
	TargetType string `json:"targetType"`
}

func (r CreateLikeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TargetID, validation.Required, is.UUID),
		validation.Field(&r.TargetType, validation.Required),
	)
}

type CreateFollowRequest struct {
	FollowingID   string `json:"followingId"`
	FollowingType string `json:"followingType"`
}

func (r CreateFollowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FollowingID, validation.Required, is.UUID),
		validation.Field(&r.FollowingType, validation.Required),
	)
}
