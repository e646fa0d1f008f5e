package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageDir is where uploaded images land, served under /static/images/
const ImageDir = "static/images"

var allowedImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// SaveImage stores an uploaded image under a collision-resistant name and
// returns its relative reference path. Unsupported extensions fall back to jpg.
func SaveImage(file *multipart.FileHeader) (string, error) {
	ext := "jpg"
	if idx := strings.LastIndex(file.Filename, "."); idx >= 0 {
		candidate := strings.ToLower(file.Filename[idx+1:])
		if allowedImageExts[candidate] {
			ext = candidate
		}
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)

	if err := os.MkdirAll(ImageDir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(ImageDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/static/images/" + name, nil
}
