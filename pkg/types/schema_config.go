package types

import "encoding/json"

// Selection scope applied to every schema config.
const (
	ScopeGlobal = "global"
)

// Author entity kinds for the author schema.
const (
	AuthorPerson       = "Person"
	AuthorOrganization = "Organization"
)

// SchemaConfig is the admin-authored mapping for one schema key. It is
// persisted as a single serialized value per key in the options store and
// read once per key per render.
type SchemaConfig struct {
	// PostType is "global" for site-wide schemas or a post type name.
	PostType string `json:"post_type" yaml:"post_type"`

	// SelectedPost, when > 0, restricts output to exactly one post.
	SelectedPost int64 `json:"selected_post,omitempty" yaml:"selected_post,omitempty"`

	// MetaMap maps a schema property name to a mapping token or a list of
	// tokens. Values are opaque until resolved.
	MetaMap map[string]any `json:"meta_map" yaml:"meta_map"`

	// EnabledFields lists the active properties. Empty means every mapped
	// property is active (default-allow).
	EnabledFields []string `json:"enabled_fields,omitempty" yaml:"enabled_fields,omitempty"`

	// AuthorType selects Person or Organization for the author schema.
	AuthorType string `json:"authorType,omitempty" yaml:"authorType,omitempty"`
}

// FieldEnabled reports whether the named property is active under the
// enabled-fields allow-list. An empty list enables every mapped property.
func (c *SchemaConfig) FieldEnabled(name string) bool {
	if len(c.EnabledFields) == 0 {
		return true
	}
	for _, f := range c.EnabledFields {
		if f == name {
			return true
		}
	}
	return false
}

// Tokens returns the mapping tokens for a property as a slice. A single
// string value yields one token; a list yields one per element; an
// unmapped property yields nil.
func (c *SchemaConfig) Tokens(property string) []string {
	raw, ok := c.MetaMap[property]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Mapped reports whether the property has a mapping entry.
func (c *SchemaConfig) Mapped(property string) bool {
	_, ok := c.MetaMap[property]
	return ok
}

// AppliesTo reports whether this config selects the given post. Global
// configs apply everywhere; typed configs require a matching post type, and
// SelectedPost narrows the selection to one post.
func (c *SchemaConfig) AppliesTo(postType string, postID int64) bool {
	if c.PostType != ScopeGlobal && c.PostType != postType {
		return false
	}
	if c.SelectedPost > 0 && c.SelectedPost != postID {
		return false
	}
	return true
}

// Validate checks structural well-formedness. Resolution problems (bad
// tokens, missing metadata) are not errors; they degrade at render time.
func (c *SchemaConfig) Validate() error {
	if c.PostType == "" {
		return ErrScopeEmpty
	}
	if len(c.MetaMap) == 0 {
		return ErrMetaMapEmpty
	}
	if c.AuthorType != "" && c.AuthorType != AuthorPerson && c.AuthorType != AuthorOrganization {
		return ErrAuthorTypeInvalid
	}
	return nil
}

// DecodeSchemaConfig parses the persisted JSON form of a schema config.
// Empty input yields (nil, nil): an absent config means nothing to render,
// not an error.
func DecodeSchemaConfig(raw string) (*SchemaConfig, error) {
	if raw == "" {
		return nil, nil
	}
	var cfg SchemaConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
