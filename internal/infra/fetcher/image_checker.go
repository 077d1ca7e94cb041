package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pressroom/internal/resilience/circuitbreaker"
)

var (
	// ErrInvalidURL is returned when the image URL cannot be used at all.
	ErrInvalidURL = errors.New("invalid image url")

	// ErrPrivateIP is returned when the URL resolves to a private address.
	ErrPrivateIP = errors.New("image url resolves to private address")

	// ErrUnreachable is returned when the image could not be fetched.
	ErrUnreachable = errors.New("image unreachable")
)

const userAgent = "pressroom-image-check/1.0"

// ImageChecker probes image URLs over HTTP to confirm they can be loaded.
// A URL counts as reachable when the request completes with any 2xx status.
//
// Thread safety: ImageChecker is safe for concurrent use.
type ImageChecker struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         ImageCheckConfig
}

// NewImageChecker creates a new ImageChecker with the given configuration.
func NewImageChecker(config ImageCheckConfig) *ImageChecker {
	checker := &ImageChecker{
		circuitBreaker: circuitbreaker.New(circuitbreaker.ImageFetchConfig()),
		config:         config,
	}

	checker.client = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= checker.config.MaxRedirects {
				return fmt.Errorf("%w: too many redirects (%d)", ErrUnreachable, len(via))
			}
			// Every redirect target gets the same SSRF check as the origin.
			if err := validateURL(req.URL.String(), checker.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return checker
}

// Check verifies that the image at rawURL is reachable. It returns nil when
// the URL answers with a 2xx status, and a wrapped ErrInvalidURL, ErrPrivateIP,
// or ErrUnreachable otherwise. When the check is disabled via configuration,
// every URL is accepted.
func (ic *ImageChecker) Check(ctx context.Context, rawURL string) error {
	if !ic.config.Enabled {
		return nil
	}

	if err := validateURL(rawURL, ic.config.DenyPrivateIPs); err != nil {
		recordImageCheck("rejected")
		return err
	}

	_, err := ic.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, ic.fetch(ctx, rawURL)
	})
	if err != nil {
		recordImageCheck("failure")
		return err
	}

	recordImageCheck("success")
	return nil
}

func (ic *ImageChecker) fetch(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := ic.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain a little of the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode)
	}
	return nil
}
