package util

import "testing"

func TestCleanORCID(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "from url", input: "https://orcid.org/0000-0001-2345-6789", want: "0000-0001-2345-6789"},
		{name: "bare id", input: "0000-0001-2345-6789", want: "0000-0001-2345-6789"},
		{name: "x check digit", input: "0000-0001-2345-678X", want: "0000-0001-2345-678X"},
		{name: "url with trailing slash", input: "http://orcid.org/0000-0002-1111-2222/", want: "0000-0002-1111-2222"},
		{name: "garbage", input: "garbage", want: ""},
		{name: "lowercase x rejected", input: "0000-0001-2345-678x", want: ""},
		{name: "embedded without url", input: "id: 0000-0001-2345-6789", want: ""},
		{name: "nil", input: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanORCID(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
