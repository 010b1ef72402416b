// pkg/source/fetch_test.go
package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/hr-insights/pkg/config"
)

func fetcherFor(t *testing.T, url string) *Fetcher {
	t.Helper()
	return NewFetcher(&config.Config{
		OfficeAFile:  "A_office_data.xml",
		OfficeBFile:  "B_office_data.xml",
		HRFile:       "hr_data.xml",
		HRURL:        url,
		FetchTimeout: 5 * time.Second,
	})
}

func TestEnsureDownloadsMissingFile(t *testing.T) {
	const body = `<data><row><employee_id>A4</employee_id></row></data>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := fetcherFor(t, srv.URL)

	require.NoError(t, f.Ensure(context.Background(), dir, "hr_data.xml"))

	got, err := os.ReadFile(filepath.Join(dir, "hr_data.xml"))
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestEnsureSkipsExistingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("existing file must not be re-downloaded")
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "hr_data.xml")
	require.NoError(t, os.WriteFile(path, []byte("<data></data>"), 0o644))

	f := fetcherFor(t, srv.URL)
	require.NoError(t, f.Ensure(context.Background(), dir, "hr_data.xml"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<data></data>", string(got))
}

func TestEnsureFailsWithoutURL(t *testing.T) {
	f := fetcherFor(t, "")

	err := f.Ensure(context.Background(), t.TempDir(), "hr_data.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no download URL")
}

func TestEnsureRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := fetcherFor(t, srv.URL)

	err := f.Ensure(context.Background(), t.TempDir(), "hr_data.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
