// Package media uploads images to Cloudinary using unsigned upload
// presets, mirroring the upload flow the admin dashboard drives.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

const uploadURLFormat = "https://api.cloudinary.com/v1_1/%s/image/upload"

// UploadResult is the subset of the Cloudinary response callers need.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int64  `json:"bytes"`
}

// CloudinaryUploader uploads images via an unsigned upload preset.
type CloudinaryUploader struct {
	httpClient   *http.Client
	cloudName    string
	uploadPreset string
	uploadURL    string
	logger       *slog.Logger
}

// NewCloudinaryUploader creates a new uploader. Configured returns false
// on the result when cloudName or preset is empty.
func NewCloudinaryUploader(cloudName, uploadPreset string, logger *slog.Logger) *CloudinaryUploader {
	return &CloudinaryUploader{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		uploadURL:    fmt.Sprintf(uploadURLFormat, cloudName),
		logger:       logger,
	}
}

// Configured reports whether upload credentials are present.
func (u *CloudinaryUploader) Configured() bool {
	return u.cloudName != "" && u.uploadPreset != ""
}

// Upload sends the image bytes as a multipart form and returns the
// hosted secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, file io.Reader) (*UploadResult, error) {
	if !u.Configured() {
		return nil, fmt.Errorf("cloudinary is not configured")
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		if err := form.WriteField("upload_preset", u.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		u.logger.Error("cloudinary upload rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("cloudinary upload returned status %d", resp.StatusCode)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("cloudinary response decode failed: %w", err)
	}

	u.logger.Info("image uploaded",
		slog.String("public_id", result.PublicID),
		slog.Int64("bytes", result.Bytes))
	return &result, nil
}
