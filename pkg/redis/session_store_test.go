package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStoreKeyValidation(t *testing.T) {
	_, err := NewSessionStore("not-hex")
	require.Error(t, err)

	_, err = NewSessionStore("abcd")
	require.Error(t, err)

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestSessionRoundTrip(t *testing.T) {
	mr := setupMiniredis(t)

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	ctx := context.Background()
	data := &SessionData{UserID: "u-1", AccessToken: "access", RefreshToken: "refresh"}
	require.NoError(t, store.CreateSession(ctx, "sid-1", data, time.Hour))

	// Stored value is encrypted, not plaintext JSON
	raw, err := mr.Get("session:sid-1")
	require.NoError(t, err)
	require.False(t, strings.Contains(raw, "access"))

	got, err := store.GetSession(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, data, got)

	require.NoError(t, store.DeleteSession(ctx, "sid-1"))
	_, err = store.GetSession(ctx, "sid-1")
	require.Error(t, err)
}

func TestGetSessionBadCiphertext(t *testing.T) {
	mr := setupMiniredis(t)
	require.NoError(t, mr.Set("session:bad", "zz-not-hex"))
	mr.Set("session:short", "abcd")

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	_, err = store.GetSession(context.Background(), "bad")
	require.Error(t, err)

	_, err = store.GetSession(context.Background(), "short")
	require.Error(t, err)
}

func TestClientHelpers(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))
	v, err := Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", v)

	require.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	require.Error(t, err)

	require.NotNil(t, GetClient())
}
