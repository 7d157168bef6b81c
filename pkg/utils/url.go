package utils

import (
	"errors"
	"net/url"
)

// RedactURLError strips the query string from a transport error's URL so API
// keys sent as query parameters never reach the logs.
func RedactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			urlErr.URL = u.String()
		}
	}
	return err
}
