package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RemoteSource reads the catalog from another Ampliy backend.
type RemoteSource struct {
	baseUrl string
	client  *http.Client
}

func NewRemoteSource(baseUrl string, timeout time.Duration) *RemoteSource {
	return &RemoteSource{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *RemoteSource) Sidebar(ctx context.Context) ([]SidebarLink, error) {
	var body struct {
		Links []SidebarLink `json:"links"`
	}
	if err := s.get(ctx, "/api/sidebar", &body); err != nil {
		return nil, err
	}
	return body.Links, nil
}

func (s *RemoteSource) Content(ctx context.Context) ([]ContentItem, error) {
	var body struct {
		Items []ContentItem `json:"items"`
	}
	if err := s.get(ctx, "/api/content", &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

func (s *RemoteSource) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseUrl+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
