package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/avasseur/portfolio-builder/internal/utils"
)

var (
	ErrDisallowedExtension = errors.New("file extension not allowed")
	ErrFetchFailed         = errors.New("failed to fetch remote file")
	ErrNotPDF              = errors.New("remote file is not a PDF")
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Store writes uploaded files under a content root split into an images
// area and a CV area. Stored names embed the owner id and a random token
// so concurrent uploads never collide.
type Store struct {
	root   string
	client *http.Client
}

func NewStore(root string) *Store {
	return &Store{
		root: root,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ImagesDir returns the directory holding profile images.
func (s *Store) ImagesDir() string {
	return filepath.Join(s.root, "images")
}

// CVDir returns the directory holding CV files.
func (s *Store) CVDir() string {
	return filepath.Join(s.root, "cv")
}

// SaveProfileImage stores a profile image and returns the stored filename.
func (s *Store) SaveProfileImage(userID uint64, originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !imageExtensions[ext] {
		return "", ErrDisallowedExtension
	}

	token, err := utils.GenerateToken(8)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("profile_%d_%s_%s", userID, token, SanitizeFilename(originalName))
	if err := s.write(s.ImagesDir(), filename, src); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveCV stores a CV file and returns the stored filename. Only PDF files
// are accepted.
func (s *Store) SaveCV(userID uint64, originalName string, src io.Reader) (string, error) {
	if strings.ToLower(filepath.Ext(originalName)) != ".pdf" {
		return "", ErrDisallowedExtension
	}

	token, err := utils.GenerateToken(8)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("cv_%d_%s_%s", userID, token, SanitizeFilename(originalName))
	if err := s.write(s.CVDir(), filename, src); err != nil {
		return "", err
	}
	return filename, nil
}

// FetchCV downloads a remote CV. The response must be a 2xx with a
// PDF-like content type; anything else fails without touching local state.
func (s *Store) FetchCV(userID uint64, url, suggestedName string) (string, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/pdf") {
		return "", ErrNotPDF
	}

	name := suggestedName
	if name == "" {
		name = fmt.Sprintf("imported_cv_%d_%s.pdf", userID, time.Now().UTC().Format("20060102150405"))
	}
	if strings.ToLower(filepath.Ext(name)) != ".pdf" {
		name += ".pdf"
	}

	token, err := utils.GenerateToken(8)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("cv_%d_%s_%s", userID, token, SanitizeFilename(name))
	if err := s.write(s.CVDir(), filename, resp.Body); err != nil {
		return "", err
	}
	return filename, nil
}

// OpenCV opens a stored CV file for streaming.
func (s *Store) OpenCV(filename string) (*os.File, error) {
	// Base strips any path components a hostile value could carry.
	return os.Open(filepath.Join(s.CVDir(), filepath.Base(filename)))
}

func (s *Store) write(dir, filename string, src io.Reader) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces a client-supplied filename to a safe basename.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	return base
}
