package ui

import (
	"testing"

	"src.ked.sh/pkg/tt"
)

func TestK(t *testing.T) {
	tt.Test(t, K,
		Args('a').Rets(Key{'a', 0}),
		Args('a', Alt).Rets(Key{'a', Alt}),
		Args('a', Alt, Ctrl).Rets(Key{'a', Alt | Ctrl}),
	)
}

var Args = tt.Args

func TestKey_String(t *testing.T) {
	tt.Test(t, Key.String,
		Args(K('a')).Rets("a"),
		Args(K('a', Alt)).Rets("Alt-a"),
		Args(K('a', Ctrl, Alt, Shift)).Rets("Ctrl-Alt-Shift-a"),
		Args(K(' ')).Rets("Space"),
		Args(K(Tab)).Rets("Tab"),
		Args(K(F1)).Rets("F1"),
		Args(K(Escape)).Rets("Escape"),
		Args(K(-2000)).Rets("(bad function key -2000)"),
	)
}

func TestParseKey(t *testing.T) {
	tt.Test(t, ParseKey,
		Args("x").Rets(K('x'), nil),
		Args("Tab").Rets(K(Tab), nil),
		Args("Escape").Rets(K(Escape), nil),
		Args("F1").Rets(K(F1), nil),

		// Alt- keys are case-sensitive.
		Args("a-x").Rets(Key{'x', Alt}, nil),
		Args("a-X").Rets(Key{'X', Alt}, nil),

		// Ctrl- keys are case-insensitive.
		Args("C-x").Rets(Key{'X', Ctrl}, nil),
		Args("C-X").Rets(Key{'X', Ctrl}, nil),
		// + is the same as -.
		Args("C+X").Rets(Key{'X', Ctrl}, nil),

		Args("Alt-Ctrl-Delete").Rets(Key{Delete, Alt | Ctrl}, nil),
		// A lone "-" is a key, not a modifier separator.
		Args("-").Rets(K('-'), nil),

		Args("F123").Rets(Key{}, tt.ErrorWithMessage("bad key: F123")),
		Args("Super-X").Rets(Key{}, tt.ErrorWithMessage("bad modifier: super")),
	)
}

func TestKey_Classification(t *testing.T) {
	if !K(Up).IsArrow() || K('k').IsArrow() || K(Home).IsArrow() {
		t.Errorf("IsArrow misclassifies keys")
	}
	if !K(Escape).IsFunctionKey() || K('x').IsFunctionKey() {
		t.Errorf("IsFunctionKey misclassifies keys")
	}
}

func TestStyle_SGR(t *testing.T) {
	tt.Test(t, Style.SGR,
		Args(Style{}).Rets(""),
		Args(Style{Fg: Red}).Rets("31"),
		Args(Style{Fg: Black, Bg: DarkGrey}).Rets("30;100"),
		Args(Style{Bold: true, Inverse: true}).Rets("1;7"),
	)
}
