package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.ked.sh/pkg/ui"
)

func TestBufferBuilder(t *testing.T) {
	tests := []struct {
		name string
		bb   *BufferBuilder
		want *Buffer
	}{
		{"nothing", NewBufferBuilder(10),
			&Buffer{Width: 10, Lines: [][]Cell{{}}}},
		{"styled rune", NewBufferBuilder(10).WriteStringSGR("a", "1"),
			&Buffer{Width: 10, Lines: [][]Cell{{{"a", "1"}}}}},
		{"control character", NewBufferBuilder(10).WriteStringSGR("a\tb", "1"),
			&Buffer{Width: 10, Lines: [][]Cell{{{"a", "1"}, {"I", "1;7"}, {"b", "1"}}}}},
		{"newline", NewBufferBuilder(10).WritePlain("a\nb"),
			&Buffer{Width: 10, Lines: [][]Cell{{{"a", ""}}, {{"b", ""}}}}},
		{"clipping", NewBufferBuilder(3).WritePlain("abcd").Newline().WritePlain("e"),
			&Buffer{Width: 3, Lines: [][]Cell{
				{{"a", ""}, {"b", ""}, {"c", ""}}, {{"e", ""}}}}},
		{"dot", NewBufferBuilder(5).WritePlain("ab").SetDotHere().WritePlain("c"),
			&Buffer{Width: 5, Lines: [][]Cell{{{"a", ""}, {"b", ""}, {"c", ""}}},
				Dot: Pos{0, 2}}},
		{"padding", NewBufferBuilder(3).WritePlain("a").PadToWidth(ui.Style{Inverse: true}),
			&Buffer{Width: 3, Lines: [][]Cell{{{"a", ""}, {" ", "7"}, {" ", "7"}}}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.bb.Buffer()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlit(t *testing.T) {
	b := NewBuffer(3, 4)
	src := NewBufferBuilder(3).WritePlain("xyz").Newline().WritePlain("uvw").Buffer()
	b.Blit(1, 2, src)
	want := "\n  xy\n  uv\n"
	if got := b.PlainText(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTTYString(t *testing.T) {
	b := NewBufferBuilder(3).WriteStringSGR("ab", "1").Buffer()
	want := "Width = 3, Dot = (0, 0)\n" +
		"┌───┐\n" +
		"│\033[0;1mab\033[m │\n" +
		"└───┘\n"
	if got := b.TTYString(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if (*Buffer)(nil).TTYString() != "nil" {
		t.Errorf("nil buffer")
	}
}
