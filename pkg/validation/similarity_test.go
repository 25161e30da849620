package validation

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "Ahmed Khan", b: "Ahmed Khan", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "punctuation and case ignored", a: "ahmed-khan", b: "Ahmed Khan", want: 1.0},
		{name: "dots stripped", a: "M. Ahmed Khan", b: "m ahmed khan", want: 1.0},
		{name: "completely different", a: "abc", b: "xyz", want: 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Similarity(tc.a, tc.b); got != tc.want {
				t.Fatalf("Similarity(%q, %q) = %f, want %f", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, b := "Ahmed Khan", "Ahmad Kahn"
	if Similarity(a, b) != Similarity(b, a) {
		t.Fatalf("similarity must be symmetric for %q and %q", a, b)
	}
}

func TestSimilarity_SingleEdit(t *testing.T) {
	// "ahmedkhan" vs "ahmadkhan": nine characters, one substitution.
	got := Similarity("Ahmed Khan", "Ahmad Khan")
	want := 8.0 / 9.0
	if got != want {
		t.Fatalf("Similarity = %f, want %f", got, want)
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"Zara Ali", "Ahmed Khan"},
		{"a", "abcdefghij"},
		{"", "something"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %f, out of [0, 1]", p[0], p[1], got)
		}
	}
}
