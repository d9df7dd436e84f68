package naming

import "testing"

func TestConstructID(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/":                   "Root",
		"":                    "Root",
		"/pets":               "Pets",
		"/users/{user_id}":    "UsersUserId",
		"/users/{id}/orders":  "UsersIdOrders",
		"/v1.2/report-cards":  "V12ReportCards",
		"/files/{proxy+}":     "FilesProxy",
		"//double//slashes//": "DoubleSlashes",
	}
	for in, want := range cases {
		if got := ConstructID(in); got != want {
			t.Fatalf("ConstructID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleVerb(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"GET":    "Get",
		"delete": "Delete",
		" Post ": "Post",
		"":       "",
	}
	for in, want := range cases {
		if got := TitleVerb(in); got != want {
			t.Fatalf("TitleVerb(%q) = %q, want %q", in, got, want)
		}
	}
}
