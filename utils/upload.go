package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var cld *cloudinary.Cloudinary

// InitCloudinary initializes the Cloudinary connection. It is optional: when
// the environment variables are absent, images are stored on local disk and
// served from the /uploads static route instead.
func InitCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not set")
	}

	var err error
	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("error checking the Cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized, image upload will use remote storage")
	return nil
}

// UploadDir returns the local image storage directory.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

func boolPointer(b bool) *bool {
	return &b
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadImage stores a post image and returns the URL to serve it from:
// a Cloudinary secure URL when Cloudinary is configured, otherwise a
// relative /uploads path backed by local disk.
func UploadImage(file *multipart.FileHeader) (string, error) {
	if !isValidImageType(file.Filename) {
		return "", fmt.Errorf("unsupported image format, use JPG, PNG, GIF or WEBP")
	}

	// 10MB max
	if file.Size > 10*1024*1024 {
		return "", fmt.Errorf("image too large, maximum 10MB allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	if cld != nil {
		return uploadToCloudinary(src)
	}
	return saveToDisk(src, file.Filename)
}

func uploadToCloudinary(src multipart.File) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("post_%d", time.Now().Unix())
	uploadResult, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         "post_images",
		PublicID:       publicID,
		UseFilename:    boolPointer(true),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(true),
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("error uploading to Cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		return "", fmt.Errorf("empty secure URL in the Cloudinary response")
	}
	return uploadResult.SecureURL, nil
}

func saveToDisk(src multipart.File, originalName string) (string, error) {
	dir := UploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating the upload directory: %v", err)
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("error creating the image file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error writing the image file: %v", err)
	}

	return "/uploads/" + filename, nil
}

// DeleteImage removes a locally stored image. Cloudinary URLs are left alone,
// remote cleanup is handled by the storage retention settings.
func DeleteImage(imageURL string) error {
	if !strings.HasPrefix(imageURL, "/uploads/") {
		return nil
	}
	return os.Remove(filepath.Join(UploadDir(), filepath.Base(imageURL)))
}
