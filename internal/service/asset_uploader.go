package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"hospital-management-api/config"

	"github.com/sirupsen/logrus"
)

// AssetRef is the stored reference to an uploaded asset on the external host.
type AssetRef struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// AssetUploader relays a locally buffered upload to the external asset host.
type AssetUploader interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (*AssetRef, error)
}

type httpAssetUploader struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logrus.Logger
}

func NewAssetUploader(cfg config.AssetConfig, log *logrus.Logger) AssetUploader {
	return &httpAssetUploader{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.UploadTimeout},
		log:     log,
	}
}

type uploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload streams the file to the asset host as a multipart POST. A provider
// failure is returned to the caller, never swallowed: doctor creation must not
// proceed with an empty avatar reference.
func (u *httpAssetUploader) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*AssetRef, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/upload", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+u.apiKey)
	req.Header.Set("X-Upload-Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		u.log.Warnf("Asset host request failed: %+v", err)
		return nil, fmt.Errorf("asset host request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset host response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		u.log.Warnf("Asset host returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("asset host returned status %d", resp.StatusCode)
	}

	var result uploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode asset host response: %w", err)
	}
	if result.Error.Message != "" {
		u.log.Warnf("Asset host rejected upload: %s", result.Error.Message)
		return nil, fmt.Errorf("asset host rejected upload: %s", result.Error.Message)
	}
	if result.PublicID == "" || result.SecureURL == "" {
		return nil, fmt.Errorf("asset host returned an incomplete reference")
	}

	return &AssetRef{PublicID: result.PublicID, URL: result.SecureURL}, nil
}
