// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package config

import (
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// validateBaseURL validates an http(s) base URL. A path prefix is allowed
// (frontends are often mounted below the domain root) but query strings and
// fragments are not, since table paths are appended to it.
func validateBaseURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	if parsedURL.Fragment != "" {
		return fmt.Errorf("%s should not contain a fragment, remove: #%s", fieldName, parsedURL.Fragment)
	}

	return nil
}

// validateMongoURI parses a standard connection string with the driver's
// own parser. SRV strings are only checked structurally, since parsing them
// resolves SRV and TXT records and config validation must not touch DNS.
func validateMongoURI(uri string) error {
	if strings.HasPrefix(uri, connstring.SchemeMongoDBSRV+"://") {
		return validateSRVURI(strings.TrimPrefix(uri, connstring.SchemeMongoDBSRV+"://"))
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return err
	}
	if len(cs.Hosts) == 0 {
		return fmt.Errorf("host is required (e.g., localhost:27017)")
	}
	return nil
}

// validateSRVURI checks the part of a mongodb+srv URI after the scheme.
// The seed list must be a single host name without a port.
func validateSRVURI(rest string) error {
	// Cut the path and options first: option values may contain '@'.
	if end := strings.IndexAny(rest, "/?"); end >= 0 {
		rest = rest[:end]
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = rest[at+1:]
	}

	switch {
	case rest == "":
		return fmt.Errorf("host is required (e.g., cluster0.example.net)")
	case strings.Contains(rest, ","):
		return fmt.Errorf("mongodb+srv URI must name exactly one host, got %q", rest)
	case strings.Contains(rest, ":"):
		return fmt.Errorf("mongodb+srv URI must not include a port, got %q", rest)
	}
	return nil
}
