package storage

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/config"
)

func TestObjectKeyFormat(t *testing.T) {
	key := ObjectKey("PNG")

	d := time.Now()
	prefix := fmt.Sprintf("avatars/%d/%d/%d/", d.Year(), d.Month(), d.Day())
	require.True(t, strings.HasPrefix(key, prefix), key)
	require.True(t, strings.HasSuffix(key, ".png"), key)
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey("")
	require.False(t, strings.Contains(key, "."), key)
}

func TestObjectKeyStripsDot(t *testing.T) {
	key := ObjectKey(".jpeg")
	require.True(t, strings.HasSuffix(key, ".jpeg"), key)
	require.False(t, strings.Contains(key, "..jpeg"), key)
}

func TestObjectKeysAreUnique(t *testing.T) {
	require.NotEqual(t, ObjectKey("png"), ObjectKey("png"))
}

func TestPublicURL(t *testing.T) {
	store := NewAvatarStore(config.StorageConfig{
		Bucket:        "avatars",
		PublicBaseURL: "http://127.0.0.1:9000/",
	})

	url := store.PublicURL("avatars/2026/8/29/abc.png")
	require.Equal(t, "http://127.0.0.1:9000/avatars/avatars/2026/8/29/abc.png", url)
}
