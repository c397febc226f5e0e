package tags

import (
	"strings"
	"testing"

	"github.com/roach88/swima/internal/swid"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{
			name: "plain attributes",
			tag:  `<SoftwareIdentity tagId="T" regid="R"/>`,
			want: "R__T",
		},
		{
			name: "attributes separated by other content",
			tag:  `<SoftwareIdentity name="pkg" tagId="Ubuntu_22.04-x86_64-pkg-1.0" version="1.0" regid="strongswan.org"/>`,
			want: "strongswan.org__Ubuntu_22.04-x86_64-pkg-1.0",
		},
		{
			name: "regid on a later line",
			tag:  "<SoftwareIdentity\n  tagId=\"T1\"\n  regid=\"R1\">\n</SoftwareIdentity>",
			want: "R1__T1",
		},
		{
			name: "first tagId wins",
			tag:  `tagId="first" regid="R" tagId="second"`,
			want: "R__first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract([]byte(tt.tag))
			if err != nil {
				t.Fatalf("Extract() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"empty input", ""},
		{"no attributes at all", "<SoftwareIdentity name=\"pkg\"/>"},
		{"missing regid", `tagId="T"`},
		{"regid before tagId only", `regid="R" tagId="T"`},
		{"unterminated tagId", `tagId="T`},
		{"unterminated regid", `tagId="T" regid="R`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract([]byte(tt.tag))
			if err == nil {
				t.Fatal("Extract() succeeded, want NOT_FOUND")
			}
			if !swid.IsNotFound(err) {
				t.Errorf("Extract() error = %v, want NOT_FOUND status", err)
			}
		})
	}
}

// regid-before-tagId is only an error when no regid follows the tagId;
// the scan for regid restarts after the tagId closing quote.
func TestExtract_RegidSearchStartsAfterTagID(t *testing.T) {
	got, err := Extract([]byte(`regid="early" tagId="T" regid="late"`))
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if got != "late__T" {
		t.Errorf("Extract() = %q, want %q", got, "late__T")
	}
}

func TestExtract_WindowCap(t *testing.T) {
	// Attributes beyond the 1023-byte window are invisible to the scan.
	pad := strings.Repeat("x", 1024)
	_, err := Extract([]byte(pad + ` tagId="T" regid="R"`))
	if !swid.IsNotFound(err) {
		t.Errorf("Extract() error = %v, want NOT_FOUND for attributes past the window", err)
	}

	// Attributes inside the window are found regardless of total size.
	head := `tagId="T" regid="R" `
	got, err := Extract([]byte(head + strings.Repeat("y", 1<<16)))
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if got != "R__T" {
		t.Errorf("Extract() = %q, want %q", got, "R__T")
	}
}

// A closing quote outside the window cannot terminate an attribute that
// starts inside it.
func TestExtract_QuoteOutsideWindow(t *testing.T) {
	tag := `tagId="T" regid="` + strings.Repeat("r", 2000) + `"`
	_, err := Extract([]byte(tag))
	if !swid.IsNotFound(err) {
		t.Errorf("Extract() error = %v, want NOT_FOUND", err)
	}
}
