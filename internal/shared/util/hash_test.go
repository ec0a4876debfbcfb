package util

import "testing"

func TestHashContent(t *testing.T) {
	got := HashContent("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("HashContent(abc) = %s, want %s", got, want)
	}
	if HashContent("abc") != HashContent("abc") {
		t.Fatalf("expected stable hash")
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "adds extension", in: "ada", want: "ada.tex"},
		{name: "keeps extension", in: "ada.TEX", want: "ada.TEX"},
		{name: "strips separators", in: "a/b\\c", want: "a_b_c.tex"},
		{name: "strips quotes", in: `x"y`, want: "xy.tex"},
		{name: "rejects traversal", in: "../etc/passwd", wantErr: true},
		{name: "rejects blank", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SanitizeFileName(tt.in, ".tex")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
