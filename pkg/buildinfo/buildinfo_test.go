package buildinfo

import (
	"testing"

	. "src.ked.sh/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	Test(t, Program,
		ThatKed("-version").WritesStdout(Version+VersionSuffix+"\n"),
		ThatKed().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}
