package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// ErrNotConfigured is reported when upload credentials are missing from the
// environment. Detected before any network call is attempted.
var ErrNotConfigured = errors.New("asset store is not configured")

// Uploader stores a binary file under a logical folder and returns a publicly
// retrievable URL. Uploaded objects are never overwritten or deleted here.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
}

type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	UploadURL    string
}

func NewCloudinaryConfig() *CloudinaryConfig {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	if cloudName == "" || uploadPreset == "" {
		log.Println("Cloudinary not configured, uploads will be rejected")
	}
	return &CloudinaryConfig{
		CloudName:    cloudName,
		UploadPreset: uploadPreset,
		UploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
	}
}

// CloudinaryStore uploads assets through Cloudinary's unsigned-preset endpoint.
// The image/upload endpoint also accepts PDFs, which the disclosure manager uses.
type CloudinaryStore struct {
	config *CloudinaryConfig
	client *http.Client
}

func NewCloudinaryStore(config *CloudinaryConfig) *CloudinaryStore {
	return &CloudinaryStore{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	if s.config.CloudName == "" || s.config.UploadPreset == "" {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read file content: %w", err)
	}
	if err := writer.WriteField("upload_preset", s.config.UploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.UploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach asset store: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.StatusCode >= 400 {
		msg := result.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("status code %d", resp.StatusCode)
		}
		return "", fmt.Errorf("asset store rejected upload: %s", msg)
	}
	if result.SecureURL == "" {
		return "", errors.New("asset store returned no URL")
	}

	log.Println("Uploaded asset to folder", folder)
	return result.SecureURL, nil
}
