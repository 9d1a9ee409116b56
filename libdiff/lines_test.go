package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := "name: John\nheight: 1.7\nsex: Female\n"
	to := "name: John\nheight: 0.0\nsex: Female\nextra: 1\n"
	got := Lines(from, to)
	want := []Line{
		{Equal, "name: John"},
		{Delete, "height: 1.7"},
		{Insert, "height: 0.0"},
		{Equal, "sex: Female"},
		{Insert, "extra: 1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("Changed() = false")
	}
}

func TestLinesEqual(t *testing.T) {
	got := Lines("a\nb", "a\nb")
	if Changed(got) {
		t.Errorf("Changed() = true for %v", got)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestLinesBlank(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []Line
	}{
		{
			name: "insert blank",
			from: "a\nb\n",
			to:   "a\n\nb\n",
			want: []Line{{Equal, "a"}, {Insert, ""}, {Equal, "b"}},
		},
		{
			name: "delete blanks",
			from: "a\n\n\nb\n",
			to:   "a\nb\n",
			want: []Line{{Equal, "a"}, {Delete, ""}, {Delete, ""}, {Equal, "b"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines(tc.from, tc.to)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
			if !Changed(got) {
				t.Error("Changed() = false")
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format(Lines("a\nb\n", "a\nc\n"), false)
	want := strings.Join([]string{" a", "-b", "+c", ""}, "\n")
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	colored := Format([]Line{{Insert, "x"}}, true)
	if colored == "+x\n" || !strings.Contains(colored, "+x") {
		t.Errorf("Format(colors) = %q", colored)
	}
}
