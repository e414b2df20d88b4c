package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var gotReq completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := completionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message Message `json:"message"`
		}{Message: Message{Role: "assistant", Content: "Improved summary."}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test", "gpt-4o-mini", 5*time.Second)
	reply, err := c.Complete(context.Background(), "You are a CV writer.", []Message{
		{Role: "user", Content: "Rewrite my summary"},
	})
	require.NoError(t, err)
	require.Equal(t, "Improved summary.", reply)
	require.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	require.Equal(t, "system", gotReq.Messages[0].Role)
}

func TestCompleteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "m", time.Second)
	_, err := c.Complete(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse{})
	}))
	defer empty.Close()

	c = NewClient(empty.URL, "", "m", time.Second)
	_, err = c.Complete(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer bad.Close()

	c = NewClient(bad.URL, "", "m", time.Second)
	_, err = c.Complete(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
}
