package metadata

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nugetPackage(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	for name, content := range files {
		writer, err := archive.Create(name)
		require.NoError(t, err)
		_, err = writer.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, archive.Close())

	return buf.Bytes()
}

func nugetServer(t *testing.T, versions string, nupkg []byte) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/v3/index.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"resources": [
			{"@id": "%[1]s/search", "@type": "SearchQueryService"},
			{"@id": "%[1]s/flat", "@type": "PackageBaseAddress/3.0.0"}
		]}`, server.URL)
	})
	mux.HandleFunc("/flat/magick.net-q16-anycpu/index.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, versions)
	})
	mux.HandleFunc("/flat/magick.net-q16-anycpu/14.2.0/magick.net-q16-anycpu.14.2.0.nupkg", func(w http.ResponseWriter, r *http.Request) {
		w.Write(nupkg)
	})

	return server
}

func TestResolveVersion(t *testing.T) {
	server := nugetServer(t, `{"versions": ["13.10.0", "14.0.0", "14.2.0", "14.3.0-beta1", "not-a-version", "15.0.0"]}`, nil)
	downloader := NewDownloader(server.URL + "/v3/index.json")

	tests := []struct {
		constraint string
		expected   string
	}{
		{"", "15.0.0"},
		{">= 14.0, < 15", "14.2.0"},
		{"~> 13.0", "13.10.0"},
	}

	for _, test := range tests {
		t.Run(test.constraint, func(t *testing.T) {
			resolved, err := downloader.ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", test.constraint)
			require.NoError(t, err)
			assert.Equal(t, test.expected, resolved.Original())
		})
	}
}

func TestResolveVersionSkipsPrereleases(t *testing.T) {
	server := nugetServer(t, `{"versions": ["14.2.0", "15.0.0-beta1", "14.3.0-preview.2"]}`, nil)
	downloader := NewDownloader(server.URL + "/v3/index.json")

	resolved, err := downloader.ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", "")
	require.NoError(t, err)
	assert.Equal(t, "14.2.0", resolved.Original())

	server = nugetServer(t, `{"versions": ["15.0.0-beta1"]}`, nil)
	downloader = NewDownloader(server.URL + "/v3/index.json")

	_, err = downloader.ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", "")
	assert.ErrorIs(t, err, ErrNoMatchingVersion)
}

func TestResolveVersionNoMatch(t *testing.T) {
	server := nugetServer(t, `{"versions": ["13.10.0"]}`, nil)
	downloader := NewDownloader(server.URL + "/v3/index.json")

	_, err := downloader.ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", ">= 14")
	assert.ErrorIs(t, err, ErrNoMatchingVersion)

	_, err = downloader.ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", "not a constraint")
	assert.Error(t, err)
}

func TestDownload(t *testing.T) {
	nupkg := nugetPackage(t, map[string]string{
		"runtimes/linux-x64/native/Magick.Native-Q16-x64.dll.so":     "linux",
		"runtimes/win-x64/native/Magick.Native-Q16-x64.dll":          "windows",
		"runtimes/osx-arm64/native/Magick.Native-Q16-arm64.dll.dylib": "mac",
		"lib/netstandard21/Magick.NET-Q16-AnyCPU.dll":                "managed",
		"Magick.NET-Q16-AnyCPU.nuspec":                               "<package/>",
	})
	server := nugetServer(t, `{"versions": ["14.2.0"]}`, nupkg)
	downloader := NewDownloader(server.URL + "/v3/index.json")

	resolved, err := downloader.ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", "")
	require.NoError(t, err)

	output := t.TempDir()
	written, err := downloader.Download(context.Background(), "Magick.NET-Q16-AnyCPU", resolved, []string{"linux-x64", "win-x64"}, output)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(output, "linux-x64", "Magick.Native-Q16-x64.dll.so"),
		filepath.Join(output, "win-x64", "Magick.Native-Q16-x64.dll"),
	}, written)

	content, err := os.ReadFile(filepath.Join(output, "linux-x64", "Magick.Native-Q16-x64.dll.so"))
	require.NoError(t, err)
	assert.Equal(t, "linux", string(content))
	assert.NoDirExists(t, filepath.Join(output, "osx-arm64"))
}

func TestDownloadMissingBaseAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resources": []}`)
	}))
	defer server.Close()

	_, err := NewDownloader(server.URL).ResolveVersion(context.Background(), "Magick.NET-Q16-AnyCPU", "")
	assert.ErrorIs(t, err, ErrNoBaseAddress)
}

func TestQueryGetStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := NewDownloader(server.URL).queryGet(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestNativeRuntimeIdentifier(t *testing.T) {
	rids := []string{"linux-x64", "win-x86"}

	rid, found := nativeRuntimeIdentifier("runtimes/linux-x64/native/Magick.Native-Q16-x64.dll.so", rids)
	assert.True(t, found)
	assert.Equal(t, "linux-x64", rid)

	_, found = nativeRuntimeIdentifier("runtimes/linux-arm64/native/Magick.Native-Q16-arm64.dll.so", rids)
	assert.False(t, found)
	_, found = nativeRuntimeIdentifier("runtimes/linux-x64/lib/Magick.Native.dll", rids)
	assert.False(t, found)
	_, found = nativeRuntimeIdentifier("runtimes/linux-x64/native/", rids)
	assert.False(t, found)
}
