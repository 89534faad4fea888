package textenc

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		charset string
		want    string
	}{
		{
			name: "plain utf-8",
			data: []byte("perché\n"),
			want: "perché\n",
		},
		{
			name: "utf-8 bom is stripped",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("abc")...),
			want: "abc",
		},
		{
			name: "utf-16le with bom",
			data: []byte{0xFF, 0xFE, 'h', 0, 'i', 0},
			want: "hi",
		},
		{
			name: "windows-1252 fallback",
			data: []byte{'p', 'i', 0xF9},
			want: "più",
		},
		{
			name:    "explicit latin1",
			data:    []byte{'c', 'a', 'f', 0xE9},
			charset: "latin1",
			want:    "café",
		},
		{
			name: "crlf line endings",
			data: []byte("a\r\nb\r\n\r\nc\rd"),
			want: "a\nb\n\nc\nd",
		},
		{
			name: "decomposed accents are composed",
			data: []byte("Autorita\u0300"),
			want: "Autorit\u00e0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.charset)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeUnknownCharset(t *testing.T) {
	if _, err := Decode([]byte("x"), "klingon-8"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestLookup(t *testing.T) {
	for _, label := range []string{"utf-8", "UTF8", "windows-1252", "iso-8859-15"} {
		if _, err := Lookup(label); err != nil {
			t.Errorf("Lookup(%q) error: %v", label, err)
		}
	}
}
