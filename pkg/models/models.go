package models

import (
	"strings"
	"time"
)

// TargetKind tells which kind of profile a URL points at.
type TargetKind string

// Target kinds.
const (
	TargetPerson  TargetKind = "person"
	TargetCompany TargetKind = "company"
)

// SiteHost is the domain every target lives on.
const SiteHost = "linkedin.com"

// OnSite reports whether host is SiteHost or one of its subdomains.
func OnSite(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	return host == SiteHost || strings.HasSuffix(host, "."+SiteHost)
}

// ProfilePath trims path to the profile root of kind, "/in/<slug>/" or
// "/company/<slug>/". ok is false when path is not under such a root.
func (k TargetKind) ProfilePath(path string) (root string, ok bool) {
	var prefix string
	switch k {
	case TargetPerson:
		prefix = "in"
	case TargetCompany:
		prefix = "company"
	default:
		return "", false
	}
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) < 2 || segs[0] != prefix || segs[1] == "" {
		return "", false
	}
	return "/" + prefix + "/" + segs[1] + "/", true
}

// Target is a single profile to visit.
type Target struct {
	Kind TargetKind `json:"kind"`
	URL  string     `json:"url"`
}

// Result represents the outcome of one navigation step.
// HTML stays in memory for the caller and is never serialized.
type Result struct {
	URL       string        `json:"url"`
	Section   string        `json:"section"`
	Title     string        `json:"title,omitempty"`
	HTML      string        `json:"-"`
	Err       string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}
