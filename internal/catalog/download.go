package catalog

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Download streams the zip at rawURL into destDir and extracts it there,
// returning the paths of the extracted files.
func (c *Client) Download(ctx context.Context, rawURL, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: creating %s: %w", destDir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: building request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: downloading %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrCatalogStatus, resp.StatusCode, rawURL)
	}

	tmp, err := os.CreateTemp(destDir, "engine-*.zip")
	if err != nil {
		return nil, fmt.Errorf("catalog: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("catalog: writing archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("catalog: closing archive: %w", err)
	}

	return extract(tmp.Name(), destDir)
}

// extract unpacks the archive into destDir, refusing entries that would
// escape it.
func extract(archive, destDir string) ([]string, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening archive: %w", err)
	}
	defer zr.Close()

	var out []string
	for _, f := range zr.File {
		target := filepath.Join(destDir, filepath.FromSlash(f.Name))
		rel, err := filepath.Rel(destDir, target)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			return nil, fmt.Errorf("catalog: archive entry %q escapes destination", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("catalog: creating %s: %w", target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("catalog: creating %s: %w", filepath.Dir(target), err)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("catalog: reading entry %s: %w", f.Name, err)
		}
		w, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, f.Mode())
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("catalog: creating %s: %w", target, err)
		}
		_, err = io.Copy(w, rc)
		rc.Close()
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: extracting %s: %w", f.Name, err)
		}
		out = append(out, target)
	}
	return out, nil
}
