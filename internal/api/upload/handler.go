package upload

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"remcua-backend/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

var urlFetchClient = &http.Client{Timeout: 30 * time.Second}

func storeFormFile(c *gin.Context, kind string, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	return storage.Default.Upload(c.Request.Context(), kind, header.Filename, file, header.Size, contentType)
}

// POST /upload/from-device (multipart field "image")
func FromDevice(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	uploadedURL, err := storeFormFile(c, storage.KindImage, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": uploadedURL})
}

// POST /upload/video (multipart field "video")
func Video(c *gin.Context) {
	header, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing video file"})
		return
	}

	uploadedURL, err := storeFormFile(c, storage.KindVideo, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": uploadedURL})
}

// POST /upload/multiple-from-device (multipart field "images[]")
// Each file is an independent upload; one failure fails the batch, already
// stored files are not rolled back.
func MultipleFromDevice(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["images[]"]
	if len(files) == 0 {
		files = form.File["images"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image files"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		uploadedURL, err := storeFormFile(c, storage.KindImage, header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		urls = append(urls, uploadedURL)
	}

	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

// POST /upload/from-url ({"imageUrl": ...})
// The server fetches the remote image and stores it like a device upload.
func FromURL(c *gin.Context) {
	var req struct {
		ImageURL string `json:"imageUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed, err := url.Parse(req.ImageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image URL"})
		return
	}

	resp, err := urlFetchClient.Get(req.ImageURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch image"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch image"})
		return
	}

	fileName := path.Base(parsed.Path)
	if fileName == "/" || fileName == "." {
		fileName = "image"
	}

	uploadedURL, err := storage.Default.Upload(
		c.Request.Context(),
		storage.KindImage,
		fileName,
		resp.Body,
		resp.ContentLength,
		resp.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": uploadedURL})
}

// POST /upload/editor (multipart field "file")
// Bridges the rich-text editor's generic upload hook: video/* goes to the
// video path, everything else to the image path. The editor expects the
// stored URL under the "default" key.
func Editor(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	kind := storage.KindImage
	if strings.HasPrefix(header.Header.Get("Content-Type"), "video/") {
		kind = storage.KindVideo
	}

	uploadedURL, err := storeFormFile(c, kind, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"default": uploadedURL})
}
