package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"okuyan/internal/models"
	"okuyan/internal/observability"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxImageDim caps the longest image edge; larger uploads are downscaled.
const maxImageDim = 2048

// MediaService stores uploaded attachments on local disk and normalizes
// images to webp.
type MediaService struct {
	dir      string
	maxBytes int64
}

// UploadInput is a raw multipart upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// StoredMedia describes an accepted upload.
type StoredMedia struct {
	URL  string           `json:"url"`
	Type models.MediaKind `json:"type"`
}

// NewMediaService creates a media service writing into dir.
func NewMediaService(dir string, maxBytes int64) *MediaService {
	return &MediaService{dir: dir, maxBytes: maxBytes}
}

// Upload validates, processes, and stores one attachment. Images are decoded,
// downscaled when oversized, and re-encoded as webp; video and audio are
// stored verbatim.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*StoredMedia, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("Uploaded file is empty")
	}
	if int64(len(in.Content)) > s.maxBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File exceeds the %d byte upload limit", s.maxBytes))
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(in.Content)
	}

	kind, err := kindFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	defer observability.TrackMediaProcessing(string(kind))()

	var name string
	var data []byte
	switch kind {
	case models.MediaImage:
		data, err = s.processImage(in.Content)
		if err != nil {
			return nil, err
		}
		name = uuid.NewString() + ".webp"
	default:
		data = in.Content
		name = uuid.NewString() + safeExt(in.Filename, contentType)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("store media file: %w", err)
	}

	observability.MediaUploads.WithLabelValues(string(kind)).Inc()

	return &StoredMedia{URL: "/media/" + name, Type: kind}, nil
}

// processImage decodes, optionally downscales, and re-encodes to webp.
func (s *MediaService) processImage(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, models.NewValidationError("Unsupported or corrupt image file")
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageDim || h > maxImageDim {
		scale := float64(maxImageDim) / float64(max(w, h))
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func kindFromContentType(contentType string) (models.MediaKind, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo, nil
	case strings.HasPrefix(contentType, "audio/"):
		return models.MediaAudio, nil
	default:
		return "", models.NewValidationError("File must be an image, video, or audio file")
	}
}

// safeExt derives a file extension from the original name, falling back to
// the MIME subtype. Only simple alphanumeric extensions pass through.
func safeExt(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 1 && len(ext) <= 6 && isAlnum(ext[1:]) {
		return ext
	}
	if _, subtype, ok := strings.Cut(contentType, "/"); ok && isAlnum(subtype) {
		return "." + subtype
	}
	return ".bin"
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return len(s) > 0
}
