package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.ked.sh/pkg/must"
	"src.ked.sh/pkg/testutil"
	"src.ked.sh/pkg/tt"
)

var Args = tt.Args

func TestFromString(t *testing.T) {
	lines := func(s string) []string { return FromString("", s).Lines() }
	trailing := func(s string) bool { return FromString("", s).TrailingNewline() }
	tt.Test(t, lines,
		Args("").Rets([]string{""}),
		Args("\n").Rets([]string{""}),
		Args("a").Rets([]string{"a"}),
		Args("a\nb\nc\n").Rets([]string{"a", "b", "c"}),
		Args("a\nb\nc").Rets([]string{"a", "b", "c"}),
		Args("a\n\n").Rets([]string{"a", ""}),
	)
	tt.Test(t, trailing,
		Args("").Rets(false),
		Args("\n").Rets(true),
		Args("a\nb\nc\n").Rets(true),
		Args("a\nb\nc").Rets(false),
	)
}

func TestLoadWrite_RoundTrip(t *testing.T) {
	testutil.InTempDir(t)
	for _, content := range []string{"a\nb\nc\n", "a\nb\nc", "", "\n", "x\n\n\ny"} {
		must.OK(os.WriteFile("f", []byte(content), 0644))
		b, err := Load("f")
		if err != nil {
			t.Fatal(err)
		}
		must.OK(b.Write())
		if got := must.ReadFileString("f"); got != content {
			t.Errorf("round trip of %q gives %q", content, got)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	testutil.InTempDir(t)
	b, err := Load("new.txt")
	if err != nil {
		t.Fatalf("Load returns error %v", err)
	}
	if b.Name() != "new.txt" || b.LineCount() != 1 || b.Dirty() {
		t.Errorf("got buffer %q, %d lines, dirty %v", b.Name(), b.LineCount(), b.Dirty())
	}
	b.InsertChar(Pos{0, 0}, 'x')
	must.OK(b.Write())
	if got := must.ReadFileString("new.txt"); got != "x\n" {
		t.Errorf("new file has %q, want %q", got, "x\n")
	}
}

func TestLoad_CannotOpen(t *testing.T) {
	dir := testutil.InTempDir(t)
	// Reading a directory fails with an error other than "not exist".
	_, err := Load(dir)
	var openErr *CannotOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("got error %v, want *CannotOpenError", err)
	}
	if openErr.Path != dir || openErr.Unwrap() == nil {
		t.Errorf("got %#v", openErr)
	}

	if runtime.GOOS != "windows" && os.Getuid() != 0 {
		must.OK(os.WriteFile("secret", nil, 0))
		_, err = Load("secret")
		if !errors.Is(err, os.ErrPermission) {
			t.Errorf("got error %v, want one wrapping os.ErrPermission", err)
		}
	}
}

func TestWrite_NoFileName(t *testing.T) {
	b := New()
	if err := b.Write(); err != ErrNoFileName {
		t.Errorf("got error %v, want ErrNoFileName", err)
	}
}

func TestWriteAs(t *testing.T) {
	dir := testutil.TempDir(t)
	b := FromString("", "hello")
	b.InsertChar(Pos{0, 5}, '!')
	path := filepath.Join(dir, "out")
	must.OK(b.WriteAs(path))
	if b.Name() != path || b.Dirty() {
		t.Errorf("after WriteAs: name %q, dirty %v", b.Name(), b.Dirty())
	}
	if got := must.ReadFileString(path); got != "hello!" {
		t.Errorf("wrote %q", got)
	}
}

func TestWriteAs_FailureKeepsName(t *testing.T) {
	dir := testutil.TempDir(t)
	b := FromString("a.txt", "hello")
	b.InsertChar(Pos{0, 5}, '!')
	if err := b.WriteAs(filepath.Join(dir, "no", "such", "dir")); err == nil {
		t.Fatalf("WriteAs to a missing directory succeeded")
	}
	if b.Name() != "a.txt" || !b.Dirty() {
		t.Errorf("after failed WriteAs: name %q, dirty %v", b.Name(), b.Dirty())
	}
}

func TestEdits_KeepInvalidUTF8(t *testing.T) {
	b := FromString("f", "a\xffb\xe4\n")
	if n := b.LineLen(0); n != 4 {
		t.Errorf("LineLen = %d, want 4", n)
	}
	b.InsertChar(Pos{0, 2}, 'é')
	b.DeleteCharBefore(Pos{0, 1})
	if got, want := b.String(), "\xfféb\xe4\n"; got != want {
		t.Errorf("after edits: %q, want %q", got, want)
	}
	b.SplitLine(Pos{0, 3})
	if diff := cmp.Diff([]string{"\xfféb", "\xe4"}, b.Lines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	b.DeleteCharBefore(Pos{1, 1})
	if got := b.Line(1); got != "" {
		t.Errorf("deleting an invalid byte left %q", got)
	}
}

func TestEdits(t *testing.T) {
	b := FromString("f", "héllo\nworld\n")
	if b.Dirty() {
		t.Errorf("fresh buffer is dirty")
	}
	b.InsertChar(Pos{0, 2}, 'X')
	b.DeleteCharBefore(Pos{1, 0}) // no-op
	b.DeleteCharBefore(Pos{1, 5})
	b.SplitLine(Pos{0, 3})
	b.InsertBlankAbove(0)
	b.InsertBlankBelow(3)

	want := []string{"", "héX", "llo", "worl", ""}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if !b.Dirty() {
		t.Errorf("buffer not dirty after edits")
	}
	if b.LineLen(1) != 3 {
		t.Errorf("LineLen(1) = %d, want 3", b.LineLen(1))
	}

	b.JoinWithPrevious(2)
	b.JoinWithPrevious(0) // no-op
	b.ClearLine(2)
	b.DeleteLine(0)
	want = []string{"héXllo", "", ""}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestDeleteLine_NeverEmpty(t *testing.T) {
	b := FromString("", "only")
	b.DeleteLine(0)
	if diff := cmp.Diff([]string{""}, b.Lines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	b.DeleteLine(0)
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
}

func TestCannotOpenError(t *testing.T) {
	inner := errors.New("boom")
	err := &CannotOpenError{"x", inner}
	if err.Error() != "cannot open x: boom" || !errors.Is(err, inner) {
		t.Errorf("got %v", err)
	}
}
