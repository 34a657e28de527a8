package utils

import (
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func uploadTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestSaveUploadedImagesRejectsTooMany(t *testing.T) {
	files := make([]*multipart.FileHeader, MaxImagesPerProperty+1)
	for i := range files {
		files[i] = &multipart.FileHeader{Filename: "photo.jpg"}
	}

	_, err := SaveUploadedImages(uploadTestContext(t), files, t.TempDir())
	assert.Error(t, err)
}

func TestSaveUploadedImagesRejectsUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"listing.gif", "listing.pdf", "listing", "listing.JPG.exe"} {
		files := []*multipart.FileHeader{{Filename: name}}

		_, err := SaveUploadedImages(uploadTestContext(t), files, t.TempDir())
		assert.Error(t, err, "filename: %s", name)
	}
}

func TestSaveUploadedImagesEmptyList(t *testing.T) {
	urls, err := SaveUploadedImages(uploadTestContext(t), nil, t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, urls)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("7b1c3f7e-9a51-4d2b-8a0e-2f4f2f1a9c33"))
	assert.False(t, IsUUID("modern-villa-with-rice-field-view"))
	assert.False(t, IsUUID(""))
}
