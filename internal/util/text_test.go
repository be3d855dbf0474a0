package util

import "testing"

func TestCleanString(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: ""},
		{name: "trimmed", input: "  Professor \n", want: "Professor"},
		{name: "list joined", input: []any{"Dept. of Physics", "Dept. of Math"}, want: "Dept. of Physics; Dept. of Math"},
		{name: "list skips empties", input: []any{" a ", nil, "", "b"}, want: "a; b"},
		{name: "number", input: float64(42), want: "42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanString(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestCleanTelephone(t *testing.T) {
	input := []any{" +86-10-1234 ", float64(999), "", "+86-10-5678"}
	want := "+86-10-1234; +86-10-5678"
	if got := CleanTelephone(input); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := CleanTelephone(" 010-1111 "); got != "010-1111" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanEmail(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{input: "a@b.com", want: "a@b.com"},
		{input: " a@b.com ", want: "a@b.com"},
		{input: "not-an-email", want: ""},
		{input: "user@host", want: ""},
		{input: "dot.before@host", want: ""},
		{input: nil, want: ""},
	}

	for _, tc := range cases {
		if got := CleanEmail(tc.input); got != tc.want {
			t.Fatalf("CleanEmail(%v)=%q want %q", tc.input, got, tc.want)
		}
	}
}

func TestCleanIntroduction(t *testing.T) {
	input := "Research interests:\r\nquantum computing\nand optics."
	want := "Research interests: quantum computing and optics."
	if got := CleanIntroduction(input); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
