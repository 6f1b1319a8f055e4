package keymap

import (
	"testing"

	"src.ked.sh/pkg/trie"
	"src.ked.sh/pkg/tt"
	"src.ked.sh/pkg/ui"
)

var Args = tt.Args

func TestParse(t *testing.T) {
	tt.Test(t, Parse,
		Args("jk").Rets(Sequence{ui.K('j'), ui.K('k')}, nil),
		Args("<space>w").Rets(Sequence{ui.K(' '), ui.K('w')}, nil),
		Args("<Space><SPACE>").Rets(Sequence{ui.K(' '), ui.K(' ')}, nil),
		Args("<CR>").Rets(Sequence{ui.K(ui.Enter)}, nil),
		Args("<BS>").Rets(Sequence{ui.K(ui.Backspace)}, nil),
		Args("<Esc>").Rets(Sequence{ui.K(ui.Escape)}, nil),
		Args("<Tab>").Rets(Sequence{ui.K(ui.Tab)}, nil),
		Args("<lt>x").Rets(Sequence{ui.K('<'), ui.K('x')}, nil),
		Args("<C-x>").Rets(Sequence{ui.K('X', ui.Ctrl)}, nil),
		Args("<A-C-x>").Rets(Sequence{ui.K('X', ui.Alt, ui.Ctrl)}, nil),
		Args("<S-Tab>").Rets(Sequence{ui.K(ui.Tab, ui.Shift)}, nil),
		Args("<Up>").Rets(Sequence{ui.K(ui.Up)}, nil),
		Args("é>").Rets(Sequence{ui.K('é'), ui.K('>')}, nil),

		Args("").Rets(Sequence(nil), ErrEmpty),
		Args("a<space").Rets(Sequence(nil), ErrUnterminated),
		Args("<foo>").Rets(Sequence(nil), tt.ErrorWithMessage("unknown key <foo>")),
		Args("<>").Rets(Sequence(nil), tt.ErrorWithMessage("unknown key <>")),
		Args("<X-a>").Rets(Sequence(nil), tt.ErrorWithMessage("bad modifier in <X-a>")),
		Args("\xff").Rets(Sequence(nil), ErrInvalidUTF8),
		Args("j\xe4k").Rets(Sequence(nil), ErrInvalidUTF8),
		Args("<C-\xff>").Rets(Sequence(nil), ErrInvalidUTF8),
	)
}

func TestSequenceString(t *testing.T) {
	tt.Test(t, Sequence.String,
		Args(MustParse("jk")).Rets("jk"),
		Args(MustParse("<space>w")).Rets("<space>w"),
		Args(MustParse("<cr><esc><bs><tab>")).Rets("<CR><Esc><BS><Tab>"),
		Args(MustParse("<c-x>")).Rets("<C-X>"),
		Args(MustParse("<lt>")).Rets("<lt>"),
	)
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse did not panic")
		}
	}()
	MustParse("<")
}

func TestBuild(t *testing.T) {
	tr, err := Build([]Binding[string]{
		{"<space>w", "write"},
		{"jk", "leave"},
		{"jk", "ignored"},
	})
	if err != nil {
		t.Fatal(err)
	}
	tt.Test(t, tr.Fetch,
		Args(MustParse("<space>w")).Rets(trie.Result[string]{Verdict: trie.Matched, Value: "write"}),
		Args(MustParse("jk")).Rets(trie.Result[string]{Verdict: trie.Matched, Value: "leave"}),
		Args(MustParse("<space>")).Rets(trie.Result[string]{Verdict: trie.Incomplete}),
	)

	_, err = Build([]Binding[string]{{"<bad>", "x"}})
	if err == nil || err.Error() != `binding "<bad>": unknown key <bad>` {
		t.Errorf("got error %v", err)
	}
}
