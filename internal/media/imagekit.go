package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
)

type ImageKitConfig struct {
	PrivateKey  string
	URLEndpoint string // public delivery prefix, e.g. https://ik.imagekit.io/<id>
	UploadURL   string
	APIURL      string
}

// ImageKit is a Store backed by the ImageKit media API.
type ImageKit struct {
	cfg    ImageKitConfig
	client *http.Client
}

type imageKitFile struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	FilePath string `json:"filePath"`
	URL      string `json:"url"`
}

type imageKitError struct {
	Message string `json:"message"`
	Help    string `json:"help"`
}

// NewImageKit builds the client. A nil httpClient means http.DefaultClient.
func NewImageKit(cfg ImageKitConfig, httpClient *http.Client) (*ImageKit, error) {
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("imagekit: private key is required")
	}
	if cfg.URLEndpoint == "" {
		return nil, fmt.Errorf("imagekit: url endpoint is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	cfg.URLEndpoint = strings.TrimRight(cfg.URLEndpoint, "/")
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &ImageKit{cfg: cfg, client: httpClient}, nil
}

func (k *ImageKit) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"file":              base64.StdEncoding.EncodeToString(in.Data),
		"fileName":          in.FileName,
		"folder":            in.Folder,
		"useUniqueFileName": "false",
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("imagekit upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("imagekit upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.cfg.UploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("imagekit upload: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out imageKitFile
	if err := k.do(req, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("imagekit upload: %w", err)
	}
	if out.URL == "" {
		return nil, fmt.Errorf("imagekit upload: response has no url")
	}
	return &UploadResult{URL: out.URL, FileID: out.FileID}, nil
}

func (k *ImageKit) Delete(ctx context.Context, fileID string) error {
	if fileID == "" {
		return ErrNoFileID
	}
	endpoint := k.cfg.APIURL + "/v1/files/" + url.PathEscape(fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("imagekit delete: %w", err)
	}
	if err := k.do(req, http.StatusNoContent, nil); err != nil {
		return fmt.Errorf("imagekit delete %s: %w", fileID, err)
	}
	return nil
}

// FileID resolves the ImageKit fileId of a delivery URL by listing the
// folder for the file name.
func (k *ImageKit) FileID(ctx context.Context, rawURL string) (string, error) {
	p, err := objectPath(k.cfg.URLEndpoint, rawURL)
	if err != nil {
		return "", err
	}
	// Drop a leading transformation segment such as "tr:w-300".
	if strings.HasPrefix(p, "tr:") {
		if i := strings.Index(p, "/"); i >= 0 {
			p = p[i+1:]
		}
	}
	filePath := "/" + p
	folder, name := path.Split(filePath)

	q := url.Values{}
	q.Set("path", folder)
	q.Set("searchQuery", fmt.Sprintf("name=%q", name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.cfg.APIURL+"/v1/files?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("imagekit lookup: %w", err)
	}

	var files []imageKitFile
	if err := k.do(req, http.StatusOK, &files); err != nil {
		return "", fmt.Errorf("imagekit lookup %s: %w", filePath, err)
	}
	for _, f := range files {
		if f.FilePath == filePath {
			return f.FileID, nil
		}
	}
	return "", ErrFileNotFound
}

func (k *ImageKit) do(req *http.Request, wantStatus int, out any) error {
	req.SetBasicAuth(k.cfg.PrivateKey, "")
	req.Header.Set("Accept", "application/json")

	resp, err := k.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrFileNotFound
	}
	if resp.StatusCode != wantStatus {
		var apiErr imageKitError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
