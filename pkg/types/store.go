package types

// Well-known site option keys. The resolver maps the site: token's friendly
// names onto these.
const (
	OptionSiteName        = "blogname"
	OptionSiteDescription = "blogdescription"
	OptionSiteURL         = "siteurl"
	OptionSiteLogo        = "site_logo"
	OptionAdminEmail      = "admin_email"
)

// OptionPrefix namespaces plugin-owned options, including persisted schema
// configs (OptionPrefix + "schema_" + key).
const OptionPrefix = "schemald_"

// ContentStore provides read access to posts and the records hanging off
// them. Lookup misses are reported as empty values or ErrNotFound; the
// resolver treats both as "field absent".
type ContentStore interface {
	// GetPost returns the post with the given ID, or ErrNotFound.
	GetPost(id int64) (*Post, error)

	// PostMeta returns the single (non-array) metadata value for a key,
	// or "" when the key is unset.
	PostMeta(postID int64, key string) (string, error)

	// UserMeta returns a metadata value on a user, or "" when unset.
	UserMeta(userID int64, key string) (string, error)

	// GetUser returns the user with the given ID, or ErrNotFound.
	GetUser(id int64) (*User, error)

	// TermNames returns the names of the post's terms in a taxonomy.
	TermNames(postID int64, taxonomy string) ([]string, error)

	// TaxonomyExists reports whether any term exists in the taxonomy.
	TaxonomyExists(taxonomy string) (bool, error)

	// PostsWithMeta returns the IDs of posts of the given type whose
	// metadata key equals value.
	PostsWithMeta(postType, key, value string) ([]int64, error)
}

// SiteStore provides named site-level options plus a generic key-value
// fallback. A missing option is "" rather than an error.
type SiteStore interface {
	Option(key string) (string, error)
}

// ConfigStore exposes the persisted per-key schema mapping configs.
type ConfigStore interface {
	// SchemaConfig returns the decoded config for a key, or (nil, nil)
	// when none is saved.
	SchemaConfig(key string) (*SchemaConfig, error)

	// SchemaKeys returns every key with a saved config.
	SchemaKeys() ([]string, error)
}
