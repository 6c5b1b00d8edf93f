package application

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

// UpdateProfileRequest is the self-service profile patch.
type UpdateProfileRequest struct {
	DisplayName    *string `json:"displayName"`
	ProfilePicture *string `json:"profilePicture"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName, validation.Length(0, 100)),
		validation.Field(&r.ProfilePicture, validation.Length(0, 500)),
	)
}

// CreateUserRequest is used by administrators to provision accounts.
type CreateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, utils.PasswordRules...),
		validation.Field(&r.DisplayName, validation.Length(0, 100)),
		validation.Field(&r.Role, validation.In("", "USER", "ADMIN", "MODERATOR", "user", "admin", "moderator")),
	)
}

// UpdateUserRequest is the administrator patch; nil fields are unchanged.
type UpdateUserRequest struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	DisplayName    *string `json:"displayName"`
	ProfilePicture *string `json:"profilePicture"`
	Role           *string `json:"role"`
	IsActive       *bool   `json:"isActive"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(3, 50)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&r.DisplayName, validation.Length(0, 100)),
	)
}
