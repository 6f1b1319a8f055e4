// Package testutil has helpers shared by tests of ked's packages: temporary
// directories, environment overrides and scaled timeouts.
package testutil

import "os"

// Cleanuper is the part of [testing.TB] the helpers need to undo their
// effects.
type Cleanuper interface {
	Cleanup(func())
}

// Setenv sets an environment variable until the test ends, and returns value.
func Setenv(c Cleanuper, name, value string) string {
	restoreEnvOnCleanup(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv removes an environment variable until the test ends.
func Unsetenv(c Cleanuper, name string) {
	restoreEnvOnCleanup(c, name)
	os.Unsetenv(name)
}

func restoreEnvOnCleanup(c Cleanuper, name string) {
	if old, ok := os.LookupEnv(name); ok {
		c.Cleanup(func() { os.Setenv(name, old) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
}
