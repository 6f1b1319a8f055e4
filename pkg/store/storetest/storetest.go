// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.ked.sh/pkg/store/storedefs"
)

var (
	cmds        = []string{"w", "e foo", "vne bar", "w baz"}
	cmdsWithSeq = []storedefs.Cmd{
		{Text: "w", Seq: 1}, {Text: "e foo", Seq: 2},
		{Text: "vne bar", Seq: 3}, {Text: "w baz", Seq: 4}}
)

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	t.Helper()

	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%d, %v), want (1, nil)", startSeq, err)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%q) -> (%d, %v), want (%d, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%d, %v), want (%d, nil)",
			endSeq, err, wantedEndSeq)
	}

	// CmdsWithSeq
	got, err := store.CmdsWithSeq(startSeq, endSeq)
	if err != nil {
		t.Errorf("store.CmdsWithSeq -> error %v", err)
	}
	if diff := cmp.Diff(cmdsWithSeq, got); diff != "" {
		t.Errorf("store.CmdsWithSeq (-want +got):\n%s", diff)
	}

	// Cmd
	for i, wantCmd := range cmds {
		seq := i + startSeq
		cmd, err := store.Cmd(seq)
		if cmd != wantCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> (%v, %v), want (%v, nil)",
				seq, cmd, err, wantCmd)
		}
	}
	if _, err := store.Cmd(endSeq); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(%d) -> error %v, want ErrNoMatchingCmd", endSeq, err)
	}

	// PrevCmd and NextCmd
	tests := []struct {
		next   bool
		seq    int
		prefix string
		want   storedefs.Cmd
		err    error
	}{
		{false, 5, "w", storedefs.Cmd{Text: "w baz", Seq: 4}, nil},
		{false, 4, "w", storedefs.Cmd{Text: "w", Seq: 1}, nil},
		{false, 100, "e", storedefs.Cmd{Text: "e foo", Seq: 2}, nil},
		{false, 1, "", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
		{false, 5, "x", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
		{true, 1, "v", storedefs.Cmd{Text: "vne bar", Seq: 3}, nil},
		{true, 2, "w", storedefs.Cmd{Text: "w baz", Seq: 4}, nil},
		{true, 5, "", storedefs.Cmd{}, storedefs.ErrNoMatchingCmd},
	}
	for _, tc := range tests {
		name := "PrevCmd"
		f := store.PrevCmd
		if tc.next {
			name, f = "NextCmd", store.NextCmd
		}
		cmd, err := f(tc.seq, tc.prefix)
		if cmd != tc.want || err != tc.err {
			t.Errorf("store.%s(%d, %q) -> (%v, %v), want (%v, %v)",
				name, tc.seq, tc.prefix, cmd, err, tc.want, tc.err)
		}
	}

	// Repeating the newest command line doesn't grow the history.
	if seq, err := store.AddCmd("w baz"); seq != endSeq-1 || err != nil {
		t.Errorf("store.AddCmd of newest command -> (%d, %v), want (%d, nil)",
			seq, err, endSeq-1)
	}
	if seq, _ := store.NextCmdSeq(); seq != endSeq {
		t.Errorf("store.NextCmdSeq() after repeat -> %d, want %d", seq, endSeq)
	}
	// An older one is appended again.
	if seq, err := store.AddCmd("w"); seq != endSeq || err != nil {
		t.Errorf("store.AddCmd of older command -> (%d, %v), want (%d, nil)",
			seq, err, endSeq)
	}
}

// TestPos tests the cursor position functionality of a Store.
func TestPos(t *testing.T, store storedefs.Store) {
	t.Helper()

	if _, err := store.Pos("/a"); err != storedefs.ErrNoPos {
		t.Errorf("store.Pos of unknown file -> error %v, want ErrNoPos", err)
	}
	for _, pos := range []storedefs.Pos{{Row: 3, Col: 7}, {Row: 100000, Col: 0}} {
		if err := store.SetPos("/a", pos); err != nil {
			t.Errorf("store.SetPos -> error %v", err)
		}
		got, err := store.Pos("/a")
		if got != pos || err != nil {
			t.Errorf("store.Pos -> (%v, %v), want (%v, nil)", got, err, pos)
		}
	}
	store.SetPos("/b", storedefs.Pos{Row: 1, Col: 1})
	if got, _ := store.Pos("/a"); got != (storedefs.Pos{Row: 100000}) {
		t.Errorf("setting position of /b changed /a to %v", got)
	}
}
