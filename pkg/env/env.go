// Package env keeps names of environment variables with special significance to
// ked.
package env

// Environment variables with special significance to ked.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	HOME                = "HOME"
	KED_TEST_TIME_SCALE = "KED_TEST_TIME_SCALE"
	XDG_CONFIG_HOME     = "XDG_CONFIG_HOME"
	XDG_DATA_HOME       = "XDG_DATA_HOME"
)
