// Package version tracks the running release, orders release strings, and
// discovers newer ones on GitHub.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shikigo-cli/shikigo/network"
)

const releasesURL = "https://api.github.com/repos/shikigo-cli/shikigo/releases/latest"

// Latest retrieves the most recent stable application version identifier
// from the GitHub Releases API.
func Latest() (string, error) {
	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("unexpected status from release registry")
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
