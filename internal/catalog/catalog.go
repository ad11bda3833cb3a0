// Package catalog fetches pre-built engine libraries from a CKAN-style
// open-data catalog: query a package's resource list, pick the resource
// matching a requested version string, download the zip, extract.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

var (
	// ErrCatalogStatus indicates the catalog answered but reported failure.
	ErrCatalogStatus = errors.New("catalog: request unsuccessful")

	// ErrVersionNotFound indicates no resource matched the requested version.
	ErrVersionNotFound = errors.New("catalog: no resource for requested version")
)

// Resource is one downloadable artifact of a catalog package.
type Resource struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

// Client queries one catalog instance.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the catalog at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type packageShowResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []Resource `json:"resources"`
	} `json:"result"`
}

// Resources lists the downloadable resources of a catalog package.
func (c *Client) Resources(ctx context.Context, packageID string) ([]Resource, error) {
	u := fmt.Sprintf("%s/api/3/action/package_show?id=%s", c.BaseURL, url.QueryEscape(packageID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: building request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: querying %s: %w", packageID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrCatalogStatus, resp.StatusCode, packageID)
	}
	var body packageShowResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("catalog: decoding response: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: package %s", ErrCatalogStatus, packageID)
	}
	return body.Result.Resources, nil
}

// FindVersion picks the zip resource whose name carries the requested
// version string. "latest" (or empty) selects the highest version among
// zip resources, by natural string order of the normalized version.
func FindVersion(resources []Resource, version string) (Resource, error) {
	version = strings.TrimSpace(version)
	zips := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if strings.EqualFold(r.Format, "zip") || strings.HasSuffix(strings.ToLower(r.URL), ".zip") {
			zips = append(zips, r)
		}
	}
	if len(zips) == 0 {
		return Resource{}, fmt.Errorf("%w: %q (no zip resources)", ErrVersionNotFound, version)
	}
	if version == "" || strings.EqualFold(version, "latest") {
		sort.Slice(zips, func(i, j int) bool {
			return versionLess(numericKey(zips[i].Name), numericKey(zips[j].Name))
		})
		return zips[len(zips)-1], nil
	}
	for _, r := range zips {
		if strings.Contains(normalize(r.Name), normalize(version)) {
			return r, nil
		}
	}
	return Resource{}, fmt.Errorf("%w: %q", ErrVersionNotFound, version)
}

// numericKey extracts the digit groups of a resource name, so build
// "2015.0.1045" orders above "2015.0.706".
func numericKey(s string) []int {
	var key []int
	n, inDigits := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			inDigits = true
			continue
		}
		if inDigits {
			key = append(key, n)
			n, inDigits = 0, false
		}
	}
	if inDigits {
		key = append(key, n)
	}
	return key
}

func versionLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
