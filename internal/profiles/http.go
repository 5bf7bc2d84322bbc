package profiles

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPLookup builds a Lookup against the external profile service.
// GET {baseURL}/profiles?username=... is expected to return a Profile JSON
// object, 404 when the DJ has not claimed a profile.
func HTTPLookup(baseURL string) Lookup {
	client := &http.Client{Timeout: 5 * time.Second}

	return func(username string) (*Profile, error) {
		u, err := url.Parse(baseURL + "/profiles")
		if err != nil {
			return nil, err
		}
		q := u.Query()
		q.Set("username", username)
		u.RawQuery = q.Encode()

		resp, err := client.Get(u.String())
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			// Unclaimed profile: cache the miss instead of retrying every render
			return nil, nil
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("profile service status %d", resp.StatusCode)
		}

		var p Profile
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}
}

// NoLookup is used when no profile service is configured: every DJ resolves
// to no profile, so shows render with whatever the feed already carries.
func NoLookup(username string) (*Profile, error) {
	return nil, nil
}
