// Package game locates the currently deployed client build and hands the
// session token over to it through the local auth bridge.
package game

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/badmarinesstudio/horizon-web/internal/logging"
)

const buildPrefix = "com.badmarinesstudio.bch."

// ActiveVersion is the deployment marker published next to the builds.
type ActiveVersion struct {
	Version string `json:"version"`
}

// BuildConfig is everything the WebGL loader needs to boot one build.
type BuildConfig struct {
	Version            string `json:"version"`
	BuildURL           string `json:"buildUrl"`
	LoaderURL          string `json:"loaderUrl"`
	DataURL            string `json:"dataUrl"`
	FrameworkURL       string `json:"frameworkUrl"`
	CodeURL            string `json:"codeUrl"`
	StreamingAssetsURL string `json:"streamingAssetsUrl"`
	CompanyName        string `json:"companyName"`
	ProductName        string `json:"productName"`
}

// Service resolves the active version and derives the build file URLs.
type Service struct {
	http       *http.Client
	versionURL string
	contentURL string
	production bool
	log        logging.Logger
}

// New builds a Service. client must not carry session credentials; the
// content host is not the API and must never see the bearer token.
func New(client *http.Client, versionURL, contentURL string, production bool, log logging.Logger) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Service{http: client, versionURL: versionURL, contentURL: contentURL, production: production, log: log}
}

// ActiveVersion fetches the deployment marker. The request bypasses every
// cache so a freshly promoted version is picked up on the next boot.
func (s *Service) ActiveVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.versionURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch active version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch active version: unexpected status %d", resp.StatusCode)
	}

	var v ActiveVersion
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return "", fmt.Errorf("decode active version: %w", err)
	}
	if v.Version == "" {
		return "", fmt.Errorf("active version marker is empty")
	}
	return v.Version, nil
}

// Config resolves the active version and derives the loader URLs for it.
func (s *Service) Config(ctx context.Context) (*BuildConfig, error) {
	version, err := s.ActiveVersion(ctx)
	if err != nil {
		return nil, err
	}
	cfg := s.buildConfig(version)
	s.log.Debug(ctx, "resolved game build", "version", version, "build_url", cfg.BuildURL)
	return cfg, nil
}

// buildConfig derives the file URLs for one version. Builds live under
// <content>/<version>/Build and are named
// com.badmarinesstudio.bch.<version>_WebGL_<PROD|PREPROD>.<ext>.
func (s *Service) buildConfig(version string) *BuildConfig {
	envTag := "PREPROD"
	if s.production {
		envTag = "PROD"
	}
	buildURL := fmt.Sprintf("%s/%s/Build", s.contentURL, version)
	name := fmt.Sprintf("%s%s_WebGL_%s", buildPrefix, version, envTag)

	return &BuildConfig{
		Version:            version,
		BuildURL:           buildURL,
		LoaderURL:          fmt.Sprintf("%s/%s.loader.js", buildURL, name),
		DataURL:            fmt.Sprintf("%s/%s.data", buildURL, name),
		FrameworkURL:       fmt.Sprintf("%s/%s.framework.js", buildURL, name),
		CodeURL:            fmt.Sprintf("%s/%s.wasm", buildURL, name),
		StreamingAssetsURL: fmt.Sprintf("%s/%s/StreamingAssets", s.contentURL, version),
		CompanyName:        "BadMarines Studio",
		ProductName:        "BattleCorp",
	}
}
