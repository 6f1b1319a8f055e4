package fsutil

import (
	"os/user"
	"testing"

	"src.ked.sh/pkg/env"
	"src.ked.sh/pkg/testutil"
)

func TestGetHome_UsesHomeEnv(t *testing.T) {
	testutil.Setenv(t, env.HOME, "/home/u")
	if home, err := GetHome(""); home != "/home/u" || err != nil {
		t.Errorf("GetHome(\"\") -> (%q, %v)", home, err)
	}
}

func TestGetHome_FallsBackToUserDatabase(t *testing.T) {
	testutil.Unsetenv(t, env.HOME)
	u, err := user.Current()
	if err != nil {
		t.Skip("current user unknown:", err)
	}
	if home, err := GetHome(""); home != u.HomeDir || err != nil {
		t.Errorf("GetHome(\"\") -> (%q, %v), want (%q, nil)", home, err, u.HomeDir)
	}
}

func TestGetHome_UnknownUser(t *testing.T) {
	if _, err := GetHome("no-such-user-hopefully"); err == nil {
		t.Errorf("GetHome of unknown user -> nil error")
	}
}

func TestXDGDirs(t *testing.T) {
	testutil.Setenv(t, env.HOME, "/home/u")
	testutil.Setenv(t, env.XDG_CONFIG_HOME, "/xdg/config")
	testutil.Unsetenv(t, env.XDG_DATA_HOME)

	if dir, err := ConfigDir(); dir != "/xdg/config/ked" || err != nil {
		t.Errorf("ConfigDir -> (%q, %v)", dir, err)
	}
	if dir, err := DataDir(); dir != "/home/u/.local/share/ked" || err != nil {
		t.Errorf("DataDir -> (%q, %v)", dir, err)
	}
}
