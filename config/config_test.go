package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jo-migo/toml-to-rdb/format"
)

func TestMajorVersion(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{"full semver", "7.2.4", 7},
		{"major and minor", "6.2", 6},
		{"major only", "6", 6},
		{"zero", "0", 0},
		{"max header version", "9999", 9999},
		{"leading digits win", "11.0.0-rc1", 11},
		{"not a version", "banana", format.DefaultVersion},
		{"empty", "", format.DefaultVersion},
		{"leading dot", ".5", format.DefaultVersion},
		{"too large for header", "10000", format.DefaultVersion},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, MajorVersion(tc.input))
		})
	}
}

func TestLoad_VersionFromEnv(t *testing.T) {
	t.Setenv(VersionEnvVar, "7.2.4")
	require.Equal(t, 7, Load().Version)
}

func TestLoad_DefaultWhenEmpty(t *testing.T) {
	t.Setenv(VersionEnvVar, "")
	require.Equal(t, format.DefaultVersion, Load().Version)
}

func TestLoad_DefaultWhenUnparsable(t *testing.T) {
	t.Setenv(VersionEnvVar, "latest")
	require.Equal(t, format.DefaultVersion, Load().Version)
}
