package cmd

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeTables(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{" ", ""}, nil},
		{[]string{"Users", " messages "}, []string{"users", "messages"}},
		{[]string{"words", "WORDS", "meanings"}, []string{"words", "meanings"}},
	}
	for _, c := range cases {
		if got := normalizeTables(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("normalizeTables(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUseGzip(t *testing.T) {
	cases := []struct {
		path    string
		flagged bool
		want    bool
	}{
		{"backup.jsonl", false, false},
		{"backup.jsonl", true, true},
		{"backup.JSONL.GZ", false, true},
		{stdio, false, false},
		{stdio, true, true},
	}
	for _, c := range cases {
		if got := useGzip(c.path, c.flagged); got != c.want {
			t.Fatalf("useGzip(%q, %v) = %v, want %v", c.path, c.flagged, got, c.want)
		}
	}
}

func TestProgressStep(t *testing.T) {
	cases := map[int]int{0: 1000, 10: 1, 400: 20, 1_000_000: 1000}
	for total, want := range cases {
		if got := progressStep(total); got != want {
			t.Fatalf("progressStep(%d) = %d, want %d", total, got, want)
		}
	}
}

func TestCLIProgress(t *testing.T) {
	var out bytes.Buffer
	p := newCLIProgress(&out)
	p.StartTable("words", 2)
	p.Increment("words", 1)
	p.Increment("words", 1)
	p.FinishTable("words")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "exporting words (2 rows)" {
		t.Fatalf("first line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "exported words: 2/2 rows" {
		t.Fatalf("last line = %q", last)
	}
	if _, ok := p.counts["words"]; ok {
		t.Fatalf("progress state not cleared")
	}
}

func TestDefaultExportFilename(t *testing.T) {
	name := defaultExportFilename(true)
	if !strings.HasPrefix(name, "luci-backup-") || !strings.HasSuffix(name, ".jsonl.gz") {
		t.Fatalf("unexpected filename %q", name)
	}
}
