package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, endpoint string) *S3Storage {
	t.Helper()
	st, err := NewS3Storage(context.Background(), S3Config{
		BucketName:     "bucket",
		Region:         "us-east-1",
		Endpoint:       endpoint,
		PublicEndpoint: "cdn.local",
		AccessKey:      "x",
		SecretKey:      "y",
	})
	require.NoError(t, err)
	return st
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Config{})
	assert.Error(t, err)
}

func TestS3Storage_UploadOpenDelete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/missing.mp3"):
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>not found</Message></Error>`))
		case r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Header().Set("Content-Length", "5")
			_, _ = w.Write([]byte("audio"))
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer ts.Close()

	st := newTestStorage(t, ts.URL)
	ctx := context.Background()

	url, err := st.UploadFile(ctx, "songs/a.mp3", bytes.NewReader([]byte("audio")), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.local/bucket/songs/a.mp3", url)

	rc, meta, err := st.OpenFile(ctx, "songs/a.mp3")
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "audio", string(body))
	assert.Equal(t, "audio/mpeg", meta.ContentType)
	assert.Equal(t, int64(5), meta.Size)

	_, _, err = st.OpenFile(ctx, "songs/missing.mp3")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	require.NoError(t, st.DeleteFile(ctx, "songs/a.mp3"))
}

func TestS3Storage_Unreachable(t *testing.T) {
	st := newTestStorage(t, "http://127.0.0.1:1")

	_, err := st.UploadFile(context.Background(), "k", bytes.NewBufferString("x"), "text/plain")
	assert.Error(t, err)

	_, _, err = st.OpenFile(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrFileNotFound)
}

func TestS3Storage_GetKeyFromURL(t *testing.T) {
	st := &S3Storage{config: S3Config{BucketName: "b", Region: "us-east-1", Endpoint: "localhost:9000", PublicEndpoint: "cdn.local"}}

	k, err := st.GetKeyFromURL("http://cdn.local/b/covers/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "covers/x.jpg", k)

	k, err = st.GetKeyFromURL("http://localhost:9000/b/songs/x.mp3")
	require.NoError(t, err)
	assert.Equal(t, "songs/x.mp3", k)

	aws := &S3Storage{config: S3Config{BucketName: "b", Region: "eu-west-1"}}
	k, err = aws.GetKeyFromURL("https://b.s3.eu-west-1.amazonaws.com/f/g")
	require.NoError(t, err)
	assert.Equal(t, "f/g", k)

	_, err = aws.GetKeyFromURL("https://example.com/x")
	assert.Error(t, err)
}

func TestWithScheme(t *testing.T) {
	assert.Equal(t, "http://minio:9000", withScheme("minio:9000", false))
	assert.Equal(t, "https://minio:9000", withScheme("minio:9000", true))
	assert.Equal(t, "http://x", withScheme("http://x", true))
}
