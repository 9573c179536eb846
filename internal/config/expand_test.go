package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/graphs", filepath.Join(home, "graphs")},
		{"./graphs", "./graphs"},
		{"~other/graphs", "~other/graphs"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTilde(tt.in))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("USER", "riley")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no variables", "./graphs", "./graphs"},
		{"user", "/tmp/${USER}/graphs", "/tmp/riley/graphs"},
		{"repeated", "${USER}-${USER}", "riley-riley"},
		{"unknown left alone", "${NOPE}/graphs", "${NOPE}/graphs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.in))
		})
	}
}

func TestExpandHostname(t *testing.T) {
	got := Expand("graphs/${HOSTNAME}")
	assert.NotContains(t, got, "${HOSTNAME}")
	assert.NotEqual(t, "graphs/", got)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "a-b-c", sanitizeName("a/b:c"))
	assert.Equal(t, "plain", sanitizeName("plain"))
}
