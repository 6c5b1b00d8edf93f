package http

import (
	"net/http"

	"github.com/saransh1220/soundwave/internal/modules/social/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

// FollowHandler serves /api/user-follows.
type FollowHandler struct {
	service FollowService
}

func NewFollowHandler(service FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

func (h *FollowHandler) Create(w http.ResponseWriter, r *http.Request) {
	followerID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req application.CreateFollowRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	f, err := h.service.Follow(r.Context(), followerID, req)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, f, "Created")
}

func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	follows, err := h.service.List(r.Context())
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, follows, "")
}

func (h *FollowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, f, "")
}

func (h *FollowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Deleted")
}

func (h *FollowHandler) Followers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "followingId")
	if !ok {
		return
	}
	follows, err := h.service.ListByFollowing(r.Context(), id)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, follows, "")
}

func (h *FollowHandler) Following(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "followerId")
	if !ok {
		return
	}
	follows, err := h.service.ListByFollower(r.Context(), id)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, follows, "")
}

// Exists reports whether the caller follows ?followingId=.
func (h *FollowHandler) Exists(w http.ResponseWriter, r *http.Request) {
	followerID, ok := callerID(w, r)
	if !ok {
		return
	}
	followingID, ok := queryID(w, r, "followingId")
	if !ok {
		return
	}
	following, err := h.service.Exists(r.Context(), followerID, followingID)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]bool{"following": following}, "")
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := callerID(w, r)
	if !ok {
		return
	}
	followingID, ok := pathID(w, r, "followingId")
	if !ok {
		return
	}
	if err := h.service.Unfollow(r.Context(), followerID, followingID); err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Unfollowed")
}
