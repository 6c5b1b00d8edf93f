package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	playlistHttp "github.com/saransh1220/soundwave/internal/modules/playlist/interfaces/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func asUser(r *http.Request, id uuid.UUID, role authDomain.Role) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), id, "alice", role))
}

func TestPlaylistHandler_CreateUsesCallerAsOwner(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	owner := uuid.New()
	svc.On("Create", mock.Anything, owner, application.CreatePlaylistRequest{Name: "Chill"}).
		Return(&domain.Playlist{ID: uuid.New(), Name: "Chill", CreatedBy: owner, IsPublic: true}, nil)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/playlists", strings.NewReader(`{"name":"Chill"}`)), owner, authDomain.RoleUser)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Chill", body["name"])
	assert.Equal(t, owner.String(), body["createdBy"])
	assert.NotContains(t, body, "version")
}

func TestPlaylistHandler_CreateWithoutIdentity(t *testing.T) {
	h := playlistHttp.NewPlaylistHandler(new(mockPlaylistService))
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/playlists", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPlaylistHandler_AddSongErrorMapping(t *testing.T) {
	user := uuid.New()
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not owner", domain.ErrNotOwner, http.StatusForbidden},
		{"missing playlist", domain.ErrPlaylistNotFound, http.StatusNotFound},
		{"missing song", catalogDomain.ErrSongNotFound, http.StatusNotFound},
		{"conflict", domain.ErrConcurrentModification, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockPlaylistService)
			h := playlistHttp.NewPlaylistHandler(svc)
			id, songID := uuid.New(), uuid.New()
			svc.On("AddSong", mock.Anything, application.Caller{UserID: user}, id, songID).Return(nil, tc.err)

			req := asUser(httptest.NewRequest(http.MethodPost, "/", nil), user, authDomain.RoleUser)
			req.SetPathValue("id", id.String())
			req.SetPathValue("songId", songID.String())
			rr := httptest.NewRecorder()
			h.AddSong(rr, req)

			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestPlaylistHandler_RemoveSongPassesAdminFlag(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	admin, id, songID := uuid.New(), uuid.New(), uuid.New()
	svc.On("RemoveSong", mock.Anything, application.Caller{UserID: admin, IsAdmin: true}, id, songID).
		Return(&domain.Playlist{ID: id, SongIDs: []string{}}, nil)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/", nil), admin, authDomain.RoleAdmin)
	req.SetPathValue("id", id.String())
	req.SetPathValue("songId", songID.String())
	rr := httptest.NewRecorder()
	h.RemoveSong(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestPlaylistHandler_BatchEmptyList(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	id := uuid.New()

	req := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"songIds":[]}`)), uuid.New(), authDomain.RoleUser)
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.AddSongs(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No songs provided")
	svc.AssertNotCalled(t, "AddSongs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistHandler_BatchReportsAddedCount(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	user, id, s1 := uuid.New(), uuid.New(), uuid.New()
	svc.On("AddSongs", mock.Anything, application.Caller{UserID: user}, id, []uuid.UUID{s1, uuid.Nil}).
		Return(&domain.Playlist{ID: id, SongIDs: []string{s1.String()}}, 1, nil)

	body := `{"songIds":["` + s1.String() + `","garbage"]}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), user, authDomain.RoleUser)
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.AddSongs(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			AddedCount int `json:"addedCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Added 1 songs", resp.Message)
	assert.Equal(t, 1, resp.Data.AddedCount)
}

func TestPlaylistHandler_GetEnriched(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(&domain.PlaylistWithSongs{
		Playlist: domain.Playlist{ID: id, Name: "Mix", SongIDs: []string{"a", "b"}},
		Songs:    []catalogDomain.SongDetails{{Song: catalogDomain.Song{Title: "A"}}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body["songIds"], 2)
	assert.Len(t, body["songs"], 1)
}

func TestPlaylistHandler_ListPaginates(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	svc.On("List", mock.Anything, "road", 5, 5).Return([]domain.Playlist{{Name: "Road"}}, 6, nil)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/playlists?search=road&page=1&size=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data     []map[string]interface{} `json:"data"`
		Metadata struct {
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 6, body.Metadata.Total)
	assert.Equal(t, 2, body.Metadata.TotalPages)
}

func TestPlaylistHandler_DeleteAndMine(t *testing.T) {
	svc := new(mockPlaylistService)
	h := playlistHttp.NewPlaylistHandler(svc)
	user, id := uuid.New(), uuid.New()
	svc.On("Delete", mock.Anything, application.Caller{UserID: user}, id).Return(nil)
	svc.On("ListForUser", mock.Anything, user).Return([]domain.PlaylistWithSongs{}, nil)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/", nil), user, authDomain.RoleUser)
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.Delete(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	h.Mine(rr, asUser(httptest.NewRequest(http.MethodGet, "/", nil), user, authDomain.RoleUser))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}
