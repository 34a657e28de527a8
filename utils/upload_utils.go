package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImagesPerProperty caps the number of images accepted per listing
const MaxImagesPerProperty = 10

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// EnsureUploadDir creates the upload directory if it does not exist
func EnsureUploadDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// SaveUploadedImages persists multipart image files under dir with random
// filenames and returns their public /uploads URLs in upload order.
func SaveUploadedImages(c *gin.Context, files []*multipart.FileHeader, dir string) ([]string, error) {
	if len(files) > MaxImagesPerProperty {
		return nil, fmt.Errorf("at most %d images are allowed", MaxImagesPerProperty)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExtensions[ext] {
			return nil, fmt.Errorf("unsupported image type: %s", ext)
		}

		name := uuid.NewString() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}

		urls = append(urls, "/uploads/"+name)
	}

	return urls, nil
}
