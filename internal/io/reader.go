package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/namongk/fast-linkedin-scraper/pkg/models"
)

// ErrUnknownTarget is returned for a URL that is neither a person profile
// nor a company page.
var ErrUnknownTarget = errors.New("unrecognised target url")

// TargetReader reads scrape targets, one URL per line
type TargetReader struct{}

// NewTargetReader creates a new target reader
func NewTargetReader() *TargetReader {
	return &TargetReader{}
}

// ReadFromFile reads targets from a file. Blank lines and lines starting
// with "#" are skipped.
func (r *TargetReader) ReadFromFile(filename string) ([]models.Target, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return r.Read(file)
}

// Read reads targets from rd.
func (r *TargetReader) Read(rd io.Reader) ([]models.Target, error) {
	var targets []models.Target
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		t, err := ParseTarget(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		targets = append(targets, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return targets, nil
}

// ParseTarget infers the target kind from the URL path: /in/<slug> is a
// person, /company/<slug> a company. The host must be on linkedin.com.
func ParseTarget(raw string) (models.Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return models.Target{}, fmt.Errorf("%w: %v", ErrUnknownTarget, err)
	}
	if !models.OnSite(u.Hostname()) {
		return models.Target{}, fmt.Errorf("%w: %q is not on %s", ErrUnknownTarget, raw, models.SiteHost)
	}
	for _, kind := range []models.TargetKind{models.TargetPerson, models.TargetCompany} {
		if _, ok := kind.ProfilePath(u.Path); ok {
			return models.Target{Kind: kind, URL: raw}, nil
		}
	}
	return models.Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, raw)
}
