package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnSite(t *testing.T) {
	for _, host := range []string{"linkedin.com", "www.linkedin.com", "DE.LinkedIn.com", "www.linkedin.com."} {
		assert.True(t, OnSite(host), host)
	}
	for _, host := range []string{"", "example.com", "notlinkedin.com", "linkedin.com.evil.io"} {
		assert.False(t, OnSite(host), host)
	}
}

func TestProfilePath(t *testing.T) {
	tests := []struct {
		kind TargetKind
		path string
		want string
		ok   bool
	}{
		{TargetPerson, "/in/jane-doe", "/in/jane-doe/", true},
		{TargetPerson, "/in/jane-doe/details/experience/", "/in/jane-doe/", true},
		{TargetCompany, "/company/acme/about/", "/company/acme/", true},
		{TargetCompany, "/company/acme", "/company/acme/", true},
		{TargetPerson, "/company/acme/", "", false},
		{TargetPerson, "/in/", "", false},
		{TargetPerson, "/in//x", "", false},
		{TargetCompany, "/", "", false},
		{"group", "/in/jane/", "", false},
	}
	for _, tt := range tests {
		got, ok := tt.kind.ProfilePath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
