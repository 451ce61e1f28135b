// Generator registry and the per-invocation context generators run under.
package schema

import (
	"fmt"
	"sort"
	"time"

	"github.com/pressmark/schemald/internal/resolve"
	"github.com/pressmark/schemald/pkg/types"
)

// Generator produces the type-specific properties for one schema key.
// Implementations are registered in init() and selected by configuration
// key.
type Generator interface {
	// Key returns the configuration key the generator answers to
	// (e.g. "article", "jobposting").
	Key() string

	// Type returns the Schema.org @type the generator emits for a given
	// config. Most generators ignore the config; the author generator
	// branches on its AuthorType.
	Type(cfg *types.SchemaConfig) string

	// Generate resolves the mapped fields and applies the type's shaping
	// rules, returning properties to merge into the final object. A field
	// that resolves empty is skipped, never an error.
	Generate(c *Context) map[string]any
}

var generators = make(map[string]Generator)

// Register adds a generator to the registry. Later registrations for the
// same key replace earlier ones.
func Register(g Generator) {
	generators[g.Key()] = g
}

// Get retrieves a generator by configuration key.
func Get(key string) (Generator, error) {
	g, ok := generators[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrSchemaKeyUnknown, key)
	}
	return g, nil
}

// Keys returns all registered generator keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(generators))
	for key := range generators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Context carries everything one generator invocation needs: the parsed
// config, the resolver, the post under render (nil in global scope), and
// store access for lookups beyond plain token resolution.
type Context struct {
	Resolver *resolve.Resolver
	Config   *types.SchemaConfig
	Post     *types.Post
	Content  types.ContentStore
	Site     types.SiteStore
	Now      func() time.Time
}

// now returns the pinned clock, defaulting to wall time.
func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// fields returns the mapped property names that pass the enabled-fields
// gate, sorted for deterministic output.
func (c *Context) fields() []string {
	out := make([]string, 0, len(c.Config.MetaMap))
	for field := range c.Config.MetaMap {
		if c.Config.FieldEnabled(field) {
			out = append(out, field)
		}
	}
	sort.Strings(out)
	return out
}

// value resolves a mapped property, honoring the enabled-fields gate.
// Unmapped, disabled, or empty-resolving properties yield "".
func (c *Context) value(field string) any {
	if !c.Config.Mapped(field) || !c.Config.FieldEnabled(field) {
		return ""
	}
	return c.Resolver.Resolve(c.Config.MetaMap[field], c.Post)
}

// str resolves a mapped property to a single string.
func (c *Context) str(field string) string {
	if !c.Config.Mapped(field) || !c.Config.FieldEnabled(field) {
		return ""
	}
	return c.Resolver.String(c.Config.MetaMap[field], c.Post)
}

// lines resolves a mapped property and splits it into trimmed, non-empty
// lines.
func (c *Context) lines(field string) []string {
	return Lines(c.value(field))
}
