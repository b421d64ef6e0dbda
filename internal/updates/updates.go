// Package updates polls the GitHub releases API for newer bot versions.
package updates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// CurrentVersion is stamped into release notifications and compared against
// published tags.
const CurrentVersion = "2.3.1"

// Release is the slice of the GitHub release payload the notifier uses.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// Version returns the release tag without its leading "v".
func (r Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Checker fetches the latest release of one repository.
type Checker struct {
	Repository string
	Client     *http.Client
}

func NewChecker(repository string) *Checker {
	return &Checker{
		Repository: repository,
		Client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Latest fetches the newest published release, retrying transient failures
// with exponential backoff. A repository with no releases returns nil.
func (c *Checker) Latest(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", c.Repository)

	var release *Release
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")

		resp, err := c.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			release = nil
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("github: status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return backoff.Permanent(fmt.Errorf("github: status %d", resp.StatusCode))
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return err
		}
		var r Release
		if err := json.Unmarshal(body, &r); err != nil {
			return backoff.Permanent(err)
		}
		release = &r
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return release, nil
}

// IsNewer compares two dotted version strings numerically, segment by
// segment. Non-numeric segments compare as zero.
func IsNewer(latest, current string) bool {
	lv := versionTuple(latest)
	cv := versionTuple(current)
	for i := 0; i < len(lv) || i < len(cv); i++ {
		l, c := 0, 0
		if i < len(lv) {
			l = lv[i]
		}
		if i < len(cv) {
			c = cv[i]
		}
		if l != c {
			return l > c
		}
	}
	return false
}

func versionTuple(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.Split(v, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		nums[i] = n
	}
	return nums
}
