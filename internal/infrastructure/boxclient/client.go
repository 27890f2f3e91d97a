package boxclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/mdourado/box-geotag-service/internal/domain"
	"github.com/mdourado/box-geotag-service/internal/domain/entity"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/config"
)

// Client is a thin REST client for the Box content API. Uploads go to the
// upload host, everything else to the API host.
type Client struct {
	httpClient *http.Client
	apiBase    string
	uploadBase string
	token      string
	oauth      *oauth2.Config
}

func New(cfg config.BoxConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		apiBase:    strings.TrimRight(cfg.APIBaseURL, "/"),
		uploadBase: strings.TrimRight(cfg.UploadBaseURL, "/"),
		token:      cfg.DeveloperToken,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
	}
}

type fileEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type uploadResponse struct {
	Entries []fileEntry `json:"entries"`
}

func (c *Client) Upload(ctx context.Context, folderID, name string, content io.Reader) (*entity.StoredFile, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	attrs, err := json.Marshal(map[string]any{
		"name":   name,
		"parent": map[string]string{"id": folderID},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding upload attributes: %w", err)
	}
	if err := writer.WriteField("attributes", string(attrs)); err != nil {
		return nil, fmt.Errorf("writing attributes part: %w", err)
	}

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("writing file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadBase+"/files/content", body)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}
	if len(result.Entries) == 0 {
		return nil, fmt.Errorf("%w: upload response contained no entries", domain.ErrProviderFailure)
	}

	return &entity.StoredFile{ID: result.Entries[0].ID, Name: result.Entries[0].Name}, nil
}

func (c *Client) Delete(ctx context.Context, fileID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.fileURL(fileID), nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return c.apiError(resp)
	}
	return nil
}

// Restore brings a trashed file back. Box models this as a POST to the file
// resource itself.
func (c *Client) Restore(ctx context.Context, fileID string) (*entity.StoredFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.fileURL(fileID), strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("building restore request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var entry fileEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("decoding restore response: %w", err)
	}
	return &entity.StoredFile{ID: entry.ID, Name: entry.Name}, nil
}

// Download fetches the file content. Box answers with a redirect to a
// download host, which the HTTP client follows.
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.fileURL(fileID)+"/content", nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading download body: %w", err)
	}
	return data, nil
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (*entity.TokenPair, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return &entity.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}, nil
}

func (c *Client) fileURL(fileID string) string {
	return c.apiBase + "/files/" + fileID
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	return resp, nil
}

func (c *Client) apiError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return domain.ErrFileNotFound
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: status %d: %s", domain.ErrProviderFailure, resp.StatusCode, bytes.TrimSpace(detail))
}
