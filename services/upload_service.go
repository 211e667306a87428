package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PlaceholderImageURL is substituted whenever an image cannot be stored.
// The surrounding action (checkout, item save) proceeds regardless.
const PlaceholderImageURL = "/assets/placeholder.png"

const maxImageBytes = 5 * 1024 * 1024

// UploadService stores base64 data-URL images under a public uploads dir
// and hands back a resolvable URL.
type UploadService struct {
	Dir       string
	PublicURL string
}

func NewUploadService(dir, publicURL string) *UploadService {
	return &UploadService{Dir: dir, PublicURL: publicURL}
}

// ResolveImage turns whatever the client sent into a stable URL.
// Plain URLs pass through untouched; data URLs are persisted; anything
// that fails becomes the placeholder.
func (s *UploadService) ResolveImage(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
		return ref
	}
	url, err := s.SaveDataURL(ref)
	if err != nil {
		log.Printf("upload: falling back to placeholder: %v", err)
		return PlaceholderImageURL
	}
	return url
}

// SaveDataURL decodes a "data:image/...;base64,..." payload to a file in
// the uploads dir and returns its public URL.
func (s *UploadService) SaveDataURL(dataURL string) (string, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return "", errors.New("not an image data URL")
	}
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return "", errors.New("missing base64 payload")
	}
	ext := extFromMime(dataURL[len("data:"):idx])

	encoded := dataURL[idx+len(";base64,"):]
	// size check on the encoded form, before decoding anything
	if len(encoded)/4*3 > maxImageBytes {
		return "", errors.New("image exceeds 5MB limit")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := os.WriteFile(filepath.Join(s.Dir, filename), data, 0644); err != nil {
		return "", err
	}

	return s.PublicURL + "/uploads/" + filename, nil
}

func extFromMime(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
