package botcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsHuman(t *testing.T) {
	var gotPhone string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req checkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPhone = req.Phone
		json.NewEncoder(w).Encode(checkResponse{Human: req.Phone != "+905550000000"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", 5*time.Second)

	human, err := c.IsHuman(context.Background(), "+905551112233")
	require.NoError(t, err)
	require.True(t, human)
	require.Equal(t, "+905551112233", gotPhone)

	human, err = c.IsHuman(context.Background(), "+905550000000")
	require.NoError(t, err)
	require.False(t, human)
}

func TestIsHumanServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Second)
	_, err := c.IsHuman(context.Background(), "+905551112233")
	require.Error(t, err)
}

func TestIsHumanTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.IsHuman(context.Background(), "+905551112233")
	require.Error(t, err)
}

func TestIsHumanMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.IsHuman(context.Background(), "+905551112233")
	require.Error(t, err)
}
