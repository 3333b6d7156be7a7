package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoString(t *testing.T) {
	info := Info{CommitHash: "0123456789abcdef", BuildTime: "2026-01-01", Version: "v0.3.0"}
	assert.Equal(t, "fragfmt v0.3.0 (commit 0123456789abcdef, built 2026-01-01)", info.String())
	assert.Equal(t, "0123456", info.Short())

	dev := Info{CommitHash: "abc", BuildTime: "unknown", Version: "dev"}
	assert.Equal(t, "fragfmt dev (commit abc, built unknown)", dev.String())
	assert.Equal(t, "abc", dev.Short())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"0.3.0", ">= 0.2.0", true},
		{"v0.3.0", ">= 0.2.0, < 1.0.0", true},
		{"0.1.9", ">= 0.2.0", false},
		{"1.2.0", "~1.1", false},
		{"1.1.5", "~1.1", true},
		{"dev", ">= 99.0.0", true},
		{"", ">= 99.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			got, err := Satisfies(tt.version, tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSatisfiesInvalid(t *testing.T) {
	_, err := Satisfies("1.0.0", "not a constraint")
	assert.Error(t, err)

	_, err = Satisfies("banana", ">= 1.0.0")
	assert.Error(t, err)

	_, err = Satisfies("dev", "not a constraint")
	assert.Error(t, err)
}
