// Package config resolves process-level settings for the toml2rdb CLI.
//
// The resolved values are plain data threaded into rdb.NewDumper by the
// caller; nothing here is consulted again once the dump pass starts.
package config

import (
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jo-migo/toml-to-rdb/format"
)

// VersionEnvVar names the environment variable holding the target Redis
// version, as a plain major version or a full semantic version.
const VersionEnvVar = "REDIS_VERSION"

var semverPattern = regexp.MustCompile(`^([0-9]+)(\.[0-9]+)?(\.[0-9]+)?`)

// Config carries the settings resolved outside the encoding core.
type Config struct {
	// Version is the RDB major version written into the header.
	Version int
}

// Load reads a .env file when one exists in the working directory, then
// resolves the configuration from the environment.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		Version: versionFromEnv(),
	}
}

// versionFromEnv resolves REDIS_VERSION to its major version. An absent,
// unparsable, or out-of-range value falls back to format.DefaultVersion;
// the header has exactly four decimal digits, so anything above
// format.MaxVersion cannot be represented.
func versionFromEnv() int {
	raw, ok := os.LookupEnv(VersionEnvVar)
	if !ok {
		return format.DefaultVersion
	}

	return MajorVersion(raw)
}

// MajorVersion extracts the major component of a semantic version string,
// falling back to format.DefaultVersion when the string does not start
// with one or the component does not fit the header.
func MajorVersion(semanticVersion string) int {
	m := semverPattern.FindStringSubmatch(semanticVersion)
	if m == nil {
		return format.DefaultVersion
	}

	major, err := strconv.Atoi(m[1])
	if err != nil || major > format.MaxVersion {
		return format.DefaultVersion
	}

	return major
}
