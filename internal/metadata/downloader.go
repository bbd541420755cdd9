package metadata

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/tliron/commonlog"
)

const DefaultSource string = "https://api.nuget.org/v3/index.json"

var (
	ErrNoBaseAddress     = errors.New("package source has no PackageBaseAddress resource")
	ErrNoMatchingVersion = errors.New("no published version matches the constraint")
)

var log = commonlog.GetLogger("magickgen.metadata")

// Downloader fetches the native library binaries from a NuGet v3 package source.
type Downloader struct {
	Source string
	Client *http.Client
}

func NewDownloader(source string) *Downloader {
	if source == "" {
		source = DefaultSource
	}

	return &Downloader{Source: source, Client: http.DefaultClient}
}

// ResolveVersion returns the highest published version of packageID that satisfies constraint.
// An empty constraint selects the latest stable version.
func (downloader *Downloader) ResolveVersion(ctx context.Context, packageID string, constraint string) (*version.Version, error) {
	var constraints version.Constraints
	if constraint != "" {
		var err error
		constraints, err = version.NewConstraint(constraint)
		if err != nil {
			return nil, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
		}
	}

	baseAddress, err := downloader.getBaseAddress(ctx)
	if err != nil {
		return nil, err
	}

	versionsResponse, err := downloader.queryGet(ctx, fmt.Sprintf("%s%s/index.json", baseAddress, strings.ToLower(packageID)))
	if err != nil {
		return nil, err
	}
	versions, err := parse[map[string][]string](versionsResponse)
	if err != nil {
		return nil, fmt.Errorf("cannot parse versions of %s: %w", packageID, err)
	}

	orderedVersions := make([]*version.Version, 0, len(versions["versions"]))
	for _, versionString := range versions["versions"] {
		parsed, err := version.NewVersion(versionString)
		if err != nil {
			log.Warningf("skipping unparsable version %q of %s", versionString, packageID)
			continue
		}
		if constraints == nil && parsed.Prerelease() != "" {
			continue
		}
		if constraints != nil && !constraints.Check(parsed) {
			continue
		}

		orderedVersions = append(orderedVersions, parsed)
	}

	if len(orderedVersions) == 0 {
		return nil, fmt.Errorf("%s %s: %w", packageID, constraint, ErrNoMatchingVersion)
	}

	sort.Sort(version.Collection(orderedVersions))
	return orderedVersions[len(orderedVersions)-1], nil
}

// Download fetches packageID at the given version and extracts the native files of
// every runtime identifier into outputDir/<rid>/. It returns the written paths.
func (downloader *Downloader) Download(ctx context.Context, packageID string, packageVersion *version.Version, runtimeIdentifiers []string, outputDir string) ([]string, error) {
	baseAddress, err := downloader.getBaseAddress(ctx)
	if err != nil {
		return nil, err
	}

	id := strings.ToLower(packageID)
	versionString := strings.ToLower(packageVersion.Original())
	log.Infof("downloading %s %s", packageID, versionString)
	nugetBytes, err := downloader.queryGet(ctx, fmt.Sprintf("%s%s/%s/%s.%s.nupkg", baseAddress, id, versionString, id, versionString))
	if err != nil {
		return nil, err
	}

	bytesReader := bytes.NewReader(nugetBytes)
	nuget, err := zip.NewReader(bytesReader, int64(bytesReader.Len()))
	if err != nil {
		return nil, fmt.Errorf("cannot open package %s: %w", packageID, err)
	}

	written := make([]string, 0)
	for _, file := range nuget.File {
		rid, found := nativeRuntimeIdentifier(file.Name, runtimeIdentifiers)
		if !found {
			continue
		}

		target := filepath.Join(outputDir, rid, path.Base(file.Name))
		if err := extractFile(file, target); err != nil {
			return nil, err
		}
		log.Debugf("extracted %s", target)
		written = append(written, target)
	}

	return written, nil
}

// nativeRuntimeIdentifier matches runtimes/<rid>/native/<file> entries.
func nativeRuntimeIdentifier(name string, runtimeIdentifiers []string) (string, bool) {
	parts := strings.Split(name, "/")
	if len(parts) != 4 || parts[0] != "runtimes" || parts[2] != "native" || parts[3] == "" {
		return "", false
	}

	for _, rid := range runtimeIdentifiers {
		if parts[1] == rid {
			return rid, true
		}
	}

	return "", false
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}

	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", file.Name, err)
	}
	defer reader.Close()

	contents, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file.Name, err)
	}

	return os.WriteFile(target, contents, 0644)
}

func (downloader *Downloader) getBaseAddress(ctx context.Context) (string, error) {
	response, err := downloader.queryGet(ctx, downloader.Source)
	if err != nil {
		return "", err
	}
	index, err := parse[nugetIndex](response)
	if err != nil {
		return "", fmt.Errorf("cannot parse service index: %w", err)
	}

	for _, resource := range index.Resources {
		if strings.Contains(resource.Type, "PackageBaseAddress") {
			if !strings.HasSuffix(resource.Id, "/") {
				return resource.Id + "/", nil
			}
			return resource.Id, nil
		}
	}

	return "", ErrNoBaseAddress
}

func parse[T interface{}](source []byte) (T, error) {
	var parsedBody T
	err := json.Unmarshal(source, &parsedBody)
	return parsedBody, err
}

func (downloader *Downloader) queryGet(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := downloader.Client.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, response.Status)
	}

	return io.ReadAll(response.Body)
}

type nugetIndex struct {
	Resources []nugetResource `json:"resources"`
}

type nugetResource struct {
	Id   string `json:"@id"`
	Type string `json:"@type"`
}
