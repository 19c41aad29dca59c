// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory, since
// os.UserHomeDir() does not reliably honor HOME on every platform.
var configDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
