package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.ked.sh/pkg/edit"
	"src.ked.sh/pkg/env"
	"src.ked.sh/pkg/must"
	"src.ked.sh/pkg/testutil"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
tab-width: 2
mappings:
  normal:
    - {keys: "<space>w", action: write}
  insert:
    - keys: kj
      action: leave-insert
`))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		TabWidth:     2,
		SidebarWidth: DefaultSidebarWidth,
		Mappings: map[string][]MappingDef{
			"normal": {{Keys: "<space>w", Action: "write"}},
			"insert": {{Keys: "kj", Action: "leave-insert"}},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	wantOpts := edit.Options{
		TabWidth: 2,
		Sidebar:  DefaultSidebarWidth,
		Mappings: []edit.Mapping{
			{Mode: edit.Normal, Keys: "<space>w", Action: "write"},
			{Mode: edit.Insert, Keys: "kj", Action: "leave-insert"},
		},
	}
	if diff := cmp.Diff(wantOpts, cfg.Options()); diff != "" {
		t.Errorf("options (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unknown field", "tab-size: 2", "field tab-size not found"},
		{"bad type", "tab-width: wide", "cannot unmarshal"},
		{"tab width", "tab-width: 0", "tab-width must be between 1 and 16, got 0"},
		{"sidebar width", "sidebar-width: 11", "sidebar-width must be between 2 and 10, got 11"},
		{"bad mode", "mappings: {visual: []}", `mappings: unknown mode "visual"`},
		{"no action", "mappings: {normal: [{keys: x}]}", "mappings.normal[0]: keys and action are required"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input))
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("got error %v, want one containing %q", err, test.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.Setenv(t, env.XDG_CONFIG_HOME, dir)

	// Missing default file.
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	// Missing explicit file.
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Errorf("no error for missing explicit file")
	}

	must.WriteFile(filepath.Join(dir, "ked", "config.yaml"), "tab-width: 8\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.TabWidth)
	}

	must.WriteFile("bad.yaml", "tab-width: 99\n")
	if _, err := Load("bad.yaml"); err == nil || !strings.HasPrefix(err.Error(), "bad.yaml: ") {
		t.Errorf("got error %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	testutil.Setenv(t, env.XDG_CONFIG_HOME, "/xdg")
	if got := must.OK1(DefaultPath()); got != filepath.Join("/xdg", "ked", "config.yaml") {
		t.Errorf("DefaultPath() = %q", got)
	}

	testutil.Unsetenv(t, env.XDG_CONFIG_HOME)
	testutil.Setenv(t, env.HOME, "/home/u")
	if got := must.OK1(DefaultPath()); got != filepath.Join("/home/u", ".config", "ked", "config.yaml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}
