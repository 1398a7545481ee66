package entity

import (
	"errors"
	"testing"
)

func TestParseTransmissionType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TransmissionType
		wantErr bool
	}{
		{name: "official", input: "OFFICIAL", want: TypeOfficial},
		{name: "lowercase is normalized", input: "leak", want: TypeLeak},
		{name: "prediction", input: "PREDICTION", want: TypePrediction},
		{name: "commentary", input: "COMMENTARY", want: TypeCommentary},
		{name: "unknown", input: "RUMOR", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransmissionType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTransmissionType(%q) expected error", tt.input)
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransmissionType(%q) err=%v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransmission_HasContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "markdown body", content: "# Ironclad\n\nDrake unveiled…", want: true},
		{name: "empty", content: "", want: false},
		{name: "whitespace only", content: "  \n\t  ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Transmission{Content: tt.content}
			if got := tr.HasContent(); got != tt.want {
				t.Fatalf("HasContent()=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanPublish(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{name: "admin", roles: []string{RoleAdmin}, want: true},
		{name: "editor", roles: []string{RoleEditor}, want: true},
		{name: "editor among others", roles: []string{"viewer", RoleEditor}, want: true},
		{name: "no roles", roles: nil, want: false},
		{name: "unrelated role", roles: []string{"viewer"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPublish(tt.roles); got != tt.want {
				t.Fatalf("CanPublish(%v)=%v, want %v", tt.roles, got, tt.want)
			}
		})
	}
}

func TestValidateSourceURL(t *testing.T) {
	if err := ValidateSourceURL(""); err != nil {
		t.Fatalf("empty source URL should be allowed, got %v", err)
	}
	if err := ValidateSourceURL("https://robertsspaceindustries.com/ironclad"); err != nil {
		t.Fatalf("valid URL rejected: %v", err)
	}
	if err := ValidateSourceURL("ftp://example.com/file"); err == nil {
		t.Fatal("non-http scheme should be rejected")
	}
	if err := ValidateSourceURL("https://"); err == nil {
		t.Fatal("URL without host should be rejected")
	}
}
