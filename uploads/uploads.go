// Package uploads stores files received through multipart forms under the public directory.
package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
)

// DefaultSubDir is the directory under the public root that receives uploads.
const DefaultSubDir = "uploads"

// Sidecar writes uploaded payloads to PublicDir/SubDir and hands back the public relative path.
// It accepts any content type and size.
type Sidecar struct {
	PublicDir string
	SubDir    string
}

// NewSidecar returns a Sidecar writing into publicDir/uploads.
func NewSidecar(publicDir string) *Sidecar {
	return &Sidecar{PublicDir: publicDir, SubDir: DefaultSubDir}
}

// Dir is the absolute or relative directory uploads are written to.
func (s *Sidecar) Dir() string {
	return filepath.Join(s.PublicDir, s.SubDir)
}

// Save persists the uploaded file as "<random id>-<original name>" and returns
// "uploads/<generated name>" relative to the public root.
func (s *Sidecar) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload '%s': %w", fh.Filename, err)
	}
	defer src.Close()

	payload, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read upload '%s': %w", fh.Filename, err)
	}

	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory '%s': %w", s.Dir(), err)
	}

	name := utils.GenerateDashlessUUID() + "-" + safeBaseName(fh.Filename)
	if err := os.WriteFile(filepath.Join(s.Dir(), name), payload, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload '%s': %w", name, err)
	}

	log.Printf("INFO: Stored upload %s (%d bytes)", name, len(payload))
	return path.Join(s.SubDir, name), nil
}

// SaveIfPresent saves the form file named field. It returns nil when the request carries no
// such file, so records can store a JSON null for the missing media.
func (s *Sidecar) SaveIfPresent(c *gin.Context, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read form file '%s': %w", field, err)
	}
	rel, err := s.Save(fh)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// Discard removes files previously returned by Save, used when the record that would
// reference them is not stored. Nil and empty paths are skipped; failures are only logged.
func (s *Sidecar) Discard(paths ...*string) {
	for _, rel := range paths {
		if rel == nil || *rel == "" {
			continue
		}
		full := filepath.Join(s.PublicDir, filepath.FromSlash(*rel))
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			log.Printf("WARN: Failed to remove orphaned upload %s: %v", full, err)
			continue
		}
		log.Printf("INFO: Removed orphaned upload %s", *rel)
	}
}

// safeBaseName keeps only the last path element of a client supplied file name,
// so names like "../../x.png" cannot escape the upload directory.
func safeBaseName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "upload"
	}
	return base
}
