package types

import "time"

// Post is a content item. Field names follow the underlying store's
// vocabulary so mapping tokens like post:post_title read naturally.
type Post struct {
	ID            int64     // Row ID, > 0.
	Type          string    // Post type name (post, page, product, ...).
	Title         string    // Display title.
	Excerpt       string    // Hand-written excerpt; may be empty.
	Content       string    // Raw body, may contain markup.
	Date          time.Time // Publication time.
	Modified      time.Time // Last modification time.
	AuthorID      int64     // Owning user ID.
	FeaturedImage string    // Full-size attachment URL; empty when unset.
	Permalink     string    // Canonical URL for the post.
}

// User is a content author.
type User struct {
	ID          int64
	Login       string
	DisplayName string
	Email       string
	URL         string
}

// Term is a taxonomy term attached to a post.
type Term struct {
	Taxonomy string
	Name     string
	Slug     string
}
