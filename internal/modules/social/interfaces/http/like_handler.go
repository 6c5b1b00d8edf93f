package http

import (
	"net/http"

	"github.com/saransh1220/soundwave/internal/modules/social/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

// LikeHandler serves /api/user-likes. Likes are always recorded for the
// authenticated caller.
type LikeHandler struct {
	service LikeService
}

func NewLikeHandler(service LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req application.CreateLikeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	like, err := h.service.Like(r.Context(), userID, req)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, like, "Created")
}

func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	likes, err := h.service.List(r.Context())
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, likes, "")
}

func (h *LikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	like, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, like, "")
}

func (h *LikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *LikeHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	likes, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, likes, "")
}

// ByUserAndType lists a user's likes of one kind, e.g. their liked songs.
func (h *LikeHandler) ByUserAndType(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	likes, err := h.service.ListByUserAndType(r.Context(), userID, r.PathValue("type"))
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, likes, "")
}

func (h *LikeHandler) ByTarget(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(w, r, "targetId")
	if !ok {
		return
	}
	likes, err := h.service.ListByTarget(r.Context(), targetID)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, likes, "")
}

func (h *LikeHandler) CountByTarget(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathID(w, r, "targetId")
	if !ok {
		return
	}
	n, err := h.service.Count(r.Context(), targetID)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]int{"count": n}, "")
}

// Exists reports whether the caller likes ?targetId=.
func (h *LikeHandler) Exists(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	targetID, ok := queryID(w, r, "targetId")
	if !ok {
		return
	}
	liked, err := h.service.Exists(r.Context(), userID, targetID)
	if err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]bool{"liked": liked}, "")
}

// Unlike removes the caller's like of {targetId}.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	targetID, ok := pathID(w, r, "targetId")
	if !ok {
		return
	}
	if err := h.service.Unlike(r.Context(), userID, targetID); err != nil {
		writeSocialError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil, "Unliked")
}
