package catalog

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const fetchTimeout = 30 * time.Second

// IsRemote reports whether location is an http(s) URL rather than a file path.
func IsRemote(location string) bool {
	parsedURL, err := url.Parse(location)
	return err == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https")
}

// Fetch loads a catalog from a file path or an http(s) URL.
func Fetch(ctx context.Context, location string) (cat *Catalog, err error) {
	if !IsRemote(location) {
		cat, err = Load(location)
		return cat, err
	}

	var data []byte
	data, err = fetchFromURL(ctx, location)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch catalog from URL: %s", location)
		return cat, err
	}

	cat, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to load catalog: %s", location)
		return cat, err
	}

	return cat, err
}

func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "hwbench/1.0")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{
		Timeout: fetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(data) == 0 {
		err = errors.New("fetched catalog is empty")
		return data, err
	}

	return data, err
}
