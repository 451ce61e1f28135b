package types

import "strings"

// Token sources. Each names a resolution backend for a mapped value.
const (
	SourcePost    = "post"    // post object field (title, excerpt, content, ...)
	SourceMeta    = "meta"    // postmeta lookup by key
	SourceUser    = "user"    // usermeta on the content's author
	SourceTax     = "tax"     // comma-joined term names for a taxonomy
	SourceSite    = "site"    // site-wide option
	SourceCustom  = "custom"  // literal value, used verbatim
	SourceLiteral = "literal" // bare string with no recognized prefix
)

// sourcePrefixes maps a token prefix to its source, in the order the
// grammar recognizes them.
var sourcePrefixes = []string{
	SourcePost,
	SourceMeta,
	SourceUser,
	SourceTax,
	SourceSite,
	SourceCustom,
}

// Token is a parsed mapping token. Arg carries the field name, meta key,
// taxonomy, option key, or literal text depending on Source.
type Token struct {
	Source string
	Arg    string
}

// ParseToken parses a raw mapping token string. Unrecognized or malformed
// input never fails: it yields a literal token carrying the raw text, so a
// misconfigured mapping degrades to text rather than breaking a render.
func ParseToken(raw string) Token {
	for _, src := range sourcePrefixes {
		prefix := src + ":"
		if strings.HasPrefix(raw, prefix) {
			return Token{Source: src, Arg: raw[len(prefix):]}
		}
	}
	return Token{Source: SourceLiteral, Arg: raw}
}

// IsLiteral reports whether the token carries its value directly rather
// than naming a lookup.
func (t Token) IsLiteral() bool {
	return t.Source == SourceCustom || t.Source == SourceLiteral
}

// String reassembles the token in mapping syntax.
func (t Token) String() string {
	if t.Source == SourceLiteral {
		return t.Arg
	}
	return t.Source + ":" + t.Arg
}
