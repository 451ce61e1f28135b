// Package sqlite implements the SQLite content, site, and config store for
// schemald. It is the concrete stand-in for the CMS tables the pipeline
// reads from: posts, postmeta, users, usermeta, taxonomy terms, and options.
package sqlite

// Schema DDL for all tables.
const (
	createPosts = `CREATE TABLE IF NOT EXISTS posts (
    post_id INTEGER PRIMARY KEY,
    post_type TEXT NOT NULL,
    post_title TEXT NOT NULL DEFAULT '',
    post_excerpt TEXT NOT NULL DEFAULT '',
    post_content TEXT NOT NULL DEFAULT '',
    post_date TEXT NOT NULL,
    post_modified TEXT NOT NULL,
    post_author INTEGER NOT NULL DEFAULT 0,
    featured_image TEXT NOT NULL DEFAULT '',
    permalink TEXT NOT NULL DEFAULT ''
);`

	createPostMeta = `CREATE TABLE IF NOT EXISTS postmeta (
    meta_id TEXT PRIMARY KEY,
    post_id INTEGER NOT NULL,
    meta_key TEXT NOT NULL,
    meta_value TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (post_id) REFERENCES posts(post_id)
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY,
    user_login TEXT NOT NULL DEFAULT '',
    display_name TEXT NOT NULL DEFAULT '',
    user_email TEXT NOT NULL DEFAULT '',
    user_url TEXT NOT NULL DEFAULT ''
);`

	createUserMeta = `CREATE TABLE IF NOT EXISTS usermeta (
    meta_id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL,
    meta_key TEXT NOT NULL,
    meta_value TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (user_id) REFERENCES users(user_id)
);`

	createTerms = `CREATE TABLE IF NOT EXISTS terms (
    term_id TEXT PRIMARY KEY,
    taxonomy TEXT NOT NULL,
    name TEXT NOT NULL,
    slug TEXT NOT NULL DEFAULT ''
);`

	createTermRelationships = `CREATE TABLE IF NOT EXISTS term_relationships (
    post_id INTEGER NOT NULL,
    term_id TEXT NOT NULL,
    PRIMARY KEY (post_id, term_id),
    FOREIGN KEY (post_id) REFERENCES posts(post_id),
    FOREIGN KEY (term_id) REFERENCES terms(term_id)
);`

	createOptions = `CREATE TABLE IF NOT EXISTS options (
    option_name TEXT PRIMARY KEY,
    option_value TEXT NOT NULL DEFAULT ''
);`
)

// allTables lists the DDL statements executed on Open.
var allTables = []string{
	createPosts,
	createPostMeta,
	createUsers,
	createUserMeta,
	createTerms,
	createTermRelationships,
	createOptions,
}
