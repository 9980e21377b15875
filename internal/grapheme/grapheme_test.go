package grapheme

import "testing"

func TestCount(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "héllo", want: 5},
		{text: "é", want: 1},
		{text: "a👍b", want: 3},
		{text: "🇩🇪", want: 1}, // regional indicator pair
	}
	for _, tc := range cases {
		if got := Count(tc.text); got != tc.want {
			t.Fatalf("Count(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestAt(t *testing.T) {
	text := "a👍é"

	cases := []struct {
		col  int
		want string
		ok   bool
	}{
		{col: 0, want: "a", ok: true},
		{col: 1, want: "👍", ok: true},
		{col: 2, want: "é", ok: true},
		{col: 3, ok: false},
		{col: -1, ok: false},
	}
	for _, tc := range cases {
		got, ok := At(text, tc.col)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("At(%q, %d)=(%q, %v), want (%q, %v)", text, tc.col, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSplitAt(t *testing.T) {
	cases := []struct {
		text        string
		col         int
		left, right string
		ok          bool
	}{
		{text: "abc", col: 0, left: "", right: "abc", ok: true},
		{text: "abc", col: 2, left: "ab", right: "c", ok: true},
		{text: "abc", col: 3, left: "abc", right: "", ok: true},
		{text: "abc", col: 4, ok: false},
		{text: "abc", col: -1, ok: false},
		{text: "a👍b", col: 2, left: "a👍", right: "b", ok: true},
		{text: "", col: 0, left: "", right: "", ok: true},
		{text: "", col: 1, ok: false},
	}
	for _, tc := range cases {
		left, right, ok := SplitAt(tc.text, tc.col)
		if ok != tc.ok || left != tc.left || right != tc.right {
			t.Fatalf("SplitAt(%q, %d)=(%q, %q, %v), want (%q, %q, %v)",
				tc.text, tc.col, left, right, ok, tc.left, tc.right, tc.ok)
		}
	}
}

func TestIsCluster(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{s: "", want: false},
		{s: "a", want: true},
		{s: "ab", want: false},
		{s: "👍", want: true},
		{s: "é", want: true},
		{s: "\n", want: true},
	}
	for _, tc := range cases {
		if got := IsCluster(tc.s); got != tc.want {
			t.Fatalf("IsCluster(%q)=%v, want %v", tc.s, got, tc.want)
		}
	}
}
