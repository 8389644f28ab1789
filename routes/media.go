package routes

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"booking-marketplace-server/config"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// validateDocumentFile allows images plus PDFs for verification documents (<= 10MB)
func validateDocumentFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 10*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".pdf":
		return true
	default:
		return false
	}
}

// newCloudinary builds a Cloudinary client from configuration
func newCloudinary() (*cloudinary.Cloudinary, error) {
	cfg := config.AppConfig.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary is not configured")
	}

	return cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", cfg.APIKey, cfg.APISecret, cfg.CloudName))
}

// uploadToStorage uploads a multipart file into the given folder and returns
// the secure URL and public ID.
func uploadToStorage(ctx context.Context, header *multipart.FileHeader, folder, publicID string) (string, string, error) {
	cld, err := newCloudinary()
	if err != nil {
		return "", "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", "", err
	}

	return resp.SecureURL, resp.PublicID, nil
}

// deleteFromStorage removes an uploaded asset by its public ID
func deleteFromStorage(ctx context.Context, publicID string) error {
	cld, err := newCloudinary()
	if err != nil {
		return err
	}

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
