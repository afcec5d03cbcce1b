// Package version compares the running build against the latest release.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	goversion "github.com/hashicorp/go-version"
)

// Version is stamped at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "v0.0.0"

type release struct {
	TagName string `json:"tag_name"`
}

// Result describes the outcome of an update check.
type Result struct {
	Current  string
	Latest   string
	Outdated bool
}

// Checker queries a GitHub-style "latest release" endpoint.
type Checker struct {
	URL    string
	Client *http.Client
}

func NewChecker(url string) *Checker {
	return &Checker{
		URL:    url,
		Client: &http.Client{Timeout: 2 * time.Second},
	}
}

// Check compares current against the tag of the latest release.
func (c *Checker) Check(ctx context.Context, current string) (Result, error) {
	res := Result{Current: current}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return res, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return res, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("release lookup returned %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return res, fmt.Errorf("decode release: %w", err)
	}
	res.Latest = rel.TagName

	outdated, err := IsOutdated(current, rel.TagName)
	if err != nil {
		return res, err
	}
	res.Outdated = outdated
	return res, nil
}

// IsOutdated reports whether current is strictly older than latest.
func IsOutdated(current, latest string) (bool, error) {
	cur, err := goversion.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("parse current version %q: %w", current, err)
	}
	lat, err := goversion.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("parse latest version %q: %w", latest, err)
	}
	return cur.LessThan(lat), nil
}
