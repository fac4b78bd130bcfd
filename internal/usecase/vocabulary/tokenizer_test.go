package vocabulary

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello, world!", []string{"hello", "world"}},
		{"I a ok", []string{"ok"}},
		{"b c d", []string{"b", "c", "d"}},
		{"(word).", nil},
		{"'quoted'", []string{"quoted"}},
		{"don't stop", []string{"stop"}},
		{"ÉCOLE élève", []string{"école", "élève"}},
		{"é", nil},
		{"!! ... ,", nil},
		{"abc123 x1", []string{"x"}},
		{"   spaced\tout\nlines  ", []string{"spaced", "out", "lines"}},
	}
	for _, tc := range cases {
		got := Tokenize(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClean_SingleStripOnly(t *testing.T) {
	if _, ok := Clean("((word))"); ok {
		t.Fatalf("expected doubly wrapped token to be discarded")
	}
	if got, ok := Clean("(word)"); !ok || got != "word" {
		t.Fatalf("Clean((word)) = %q, %v", got, ok)
	}
	if _, ok := Clean("!"); ok {
		t.Fatalf("expected lone punctuation to be discarded")
	}
	if _, ok := Clean("!?"); ok {
		t.Fatalf("expected punctuation pair to be discarded")
	}
}
