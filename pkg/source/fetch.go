// pkg/source/fetch.go
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/peopleops/hr-insights/pkg/config"
)

// Fetcher downloads missing source files before parsing. Retrieval is
// best-effort infrastructure around the core: a file already on disk is
// never re-downloaded.
type Fetcher struct {
	client *http.Client
	urls   map[string]string
	logger *zap.Logger
}

// NewFetcher creates a fetcher from the configured per-file URLs.
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.FetchTimeout},
		urls: map[string]string{
			cfg.OfficeAFile: cfg.OfficeAURL,
			cfg.OfficeBFile: cfg.OfficeBURL,
			cfg.HRFile:      cfg.HRURL,
		},
		logger: zap.L().Named("fetcher"),
	}
}

// Ensure makes sure dir exists and filename is present in it,
// downloading from the configured URL when it is not.
func (f *Fetcher) Ensure(ctx context.Context, dir, filename string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	url := f.urls[filename]
	if url == "" {
		return fmt.Errorf("file %s is missing and no download URL is configured", path)
	}

	f.logger.Info("Downloading source file",
		zap.String("file", filename),
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", filename, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", filename, resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	f.logger.Info("Downloaded source file",
		zap.String("file", filename),
		zap.Int64("bytes", written))

	return nil
}
