package types

import "testing"

func TestParseToken(t *testing.T) {
	tests := []struct {
		raw        string
		wantSource string
		wantArg    string
	}{
		{"post:post_title", SourcePost, "post_title"},
		{"meta:price", SourceMeta, "price"},
		{"user:display_name", SourceUser, "display_name"},
		{"tax:category", SourceTax, "category"},
		{"site:site_name", SourceSite, "site_name"},
		{"custom:My literal", SourceCustom, "My literal"},
		{"custom:", SourceCustom, ""},
		{"plain text", SourceLiteral, "plain text"},
		{"", SourceLiteral, ""},
		{"unknown:thing", SourceLiteral, "unknown:thing"},
		{"POST:post_title", SourceLiteral, "POST:post_title"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tok := ParseToken(tt.raw)
			if tok.Source != tt.wantSource {
				t.Errorf("ParseToken(%q).Source = %q, want %q", tt.raw, tok.Source, tt.wantSource)
			}
			if tok.Arg != tt.wantArg {
				t.Errorf("ParseToken(%q).Arg = %q, want %q", tt.raw, tok.Arg, tt.wantArg)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	for _, raw := range []string{"post:post_title", "custom:literal", "bare"} {
		if got := ParseToken(raw).String(); got != raw {
			t.Errorf("ParseToken(%q).String() = %q", raw, got)
		}
	}
}

func TestTokenIsLiteral(t *testing.T) {
	if !ParseToken("custom:x").IsLiteral() {
		t.Error("custom token should be literal")
	}
	if !ParseToken("bare").IsLiteral() {
		t.Error("bare token should be literal")
	}
	if ParseToken("meta:x").IsLiteral() {
		t.Error("meta token should not be literal")
	}
}
