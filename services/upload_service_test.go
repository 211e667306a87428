package services

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestSaveDataURLWritesFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "http://test")

	url, err := svc.SaveDataURL(pngDataURL([]byte("fake png bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://test/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

func TestSaveDataURLRejectsNonImage(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "http://test")

	_, err := svc.SaveDataURL("data:text/plain;base64,aGVsbG8=")
	assert.Error(t, err)

	_, err = svc.SaveDataURL("data:image/png;base64,%%%not-base64%%%")
	assert.Error(t, err)
}

func TestSaveDataURLRejectsOversizedPayload(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "http://test")

	big := make([]byte, maxImageBytes+1)
	_, err := svc.SaveDataURL(pngDataURL(big))
	assert.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestResolveImagePassesURLsThrough(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "http://test")

	assert.Equal(t, "https://cdn.example/a.png", svc.ResolveImage("https://cdn.example/a.png"))
	assert.Equal(t, "/assets/banner.png", svc.ResolveImage("/assets/banner.png"))
}

func TestResolveImageFallsBackToPlaceholder(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "http://test")

	assert.Equal(t, PlaceholderImageURL, svc.ResolveImage("not a url and not a data url"))
}
