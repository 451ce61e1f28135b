// Package render drives the full schema pipeline for a piece of content:
// load configs, run generators, validate, arbitrate conflicts, and emit
// script blocks for the page head.
package render

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pressmark/schemald/internal/resolve"
	"github.com/pressmark/schemald/internal/schema"
	"github.com/pressmark/schemald/pkg/types"
)

// Gate decides whether rendering may happen at all. An expired gate
// silences every schema without error.
type Gate interface {
	Expired() bool
}

// openGate is the default Gate: never expired.
type openGate struct{}

func (openGate) Expired() bool { return false }

// Pipeline wires the stores, resolver, and gates into the render entry
// points. Construct with New; the zero value is not usable.
type Pipeline struct {
	content  types.ContentStore
	site     types.SiteStore
	configs  types.ConfigStore
	resolver *resolve.Resolver
	gate     Gate
	log      *zap.Logger
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithGate installs a render gate.
func WithGate(g Gate) Option {
	return func(p *Pipeline) { p.gate = g }
}

// WithLogger installs the pipeline logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithClock pins the pipeline clock. Tests use this to make normalized
// fallback dates predictable.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New builds a Pipeline over the given stores.
func New(content types.ContentStore, site types.SiteStore, configs types.ConfigStore, opts ...Option) *Pipeline {
	p := &Pipeline{
		content:  content,
		site:     site,
		configs:  configs,
		resolver: resolve.New(content, site),
		gate:     openGate{},
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildForPost renders the schema for one key against one post. Returns
// (nil, nil) when the gate is closed, the key has no config, the config
// does not apply to the post, or the assembled object fails validation.
func (p *Pipeline) BuildForPost(key string, postID int64) (map[string]any, error) {
	if p.gate.Expired() {
		return nil, nil
	}
	post, err := p.content.GetPost(postID)
	if err != nil {
		return nil, fmt.Errorf("load post %d: %w", postID, err)
	}
	cfg, err := p.configs.SchemaConfig(key)
	if err != nil {
		return nil, fmt.Errorf("load schema config %q: %w", key, err)
	}
	if cfg == nil || !cfg.AppliesTo(post.Type, post.ID) {
		return nil, nil
	}
	return p.build(key, cfg, post)
}

// BuildGlobal renders the schema for one key in site scope, with no post
// context. Only configs scoped "global" produce output here.
func (p *Pipeline) BuildGlobal(key string) (map[string]any, error) {
	if p.gate.Expired() {
		return nil, nil
	}
	cfg, err := p.configs.SchemaConfig(key)
	if err != nil {
		return nil, fmt.Errorf("load schema config %q: %w", key, err)
	}
	if cfg == nil || cfg.PostType != types.ScopeGlobal {
		return nil, nil
	}
	return p.build(key, cfg, nil)
}

// build runs one generator and the validator. Conflict arbitration happens
// a level up, in RenderHead, because it needs the whole head's worth of
// accepted schemas.
func (p *Pipeline) build(key string, cfg *types.SchemaConfig, post *types.Post) (map[string]any, error) {
	gen, err := schema.Get(key)
	if err != nil {
		return nil, err
	}
	obj := schema.Assemble(gen, &schema.Context{
		Resolver: p.resolver,
		Config:   cfg,
		Post:     post,
		Content:  p.content,
		Site:     p.site,
		Now:      p.now,
	})
	if obj == nil {
		return nil, nil
	}
	if !schema.ShouldOutput(obj) {
		p.log.Debug("schema failed required-field validation",
			zap.String("key", key),
			zap.Strings("missing", schema.MissingFields(obj)),
		)
		return nil, nil
	}
	return obj, nil
}

// RenderHead renders every configured schema applicable to a post, in
// sorted key order, applying the conflict detector across the whole set,
// and returns the assembled script-tag fragment. A post none of the
// configs select yields an empty fragment, not an error.
func (p *Pipeline) RenderHead(postID int64) (string, error) {
	objs, err := p.headObjects(postID)
	if err != nil {
		return "", err
	}
	return ScriptTags(objs)
}

// HeadObjects renders the surviving JSON-LD objects for a post without
// serializing them. The preview server uses this for its JSON endpoints.
func (p *Pipeline) HeadObjects(postID int64) ([]map[string]any, error) {
	return p.headObjects(postID)
}

func (p *Pipeline) headObjects(postID int64) ([]map[string]any, error) {
	if p.gate.Expired() {
		return nil, nil
	}
	post, err := p.content.GetPost(postID)
	if err != nil {
		return nil, fmt.Errorf("load post %d: %w", postID, err)
	}
	keys, err := p.configs.SchemaKeys()
	if err != nil {
		return nil, fmt.Errorf("list schema keys: %w", err)
	}

	detector := schema.NewDetector(p.log)
	var out []map[string]any
	for _, key := range keys {
		cfg, err := p.configs.SchemaConfig(key)
		if err != nil {
			return nil, fmt.Errorf("load schema config %q: %w", key, err)
		}
		if cfg == nil || !cfg.AppliesTo(post.Type, post.ID) {
			continue
		}
		obj, err := p.build(key, cfg, post)
		if err != nil {
			p.log.Warn("skipping schema", zap.String("key", key), zap.Error(err))
			continue
		}
		if obj == nil {
			continue
		}
		if !detector.CanOutput(obj, key) {
			continue
		}
		out = append(out, obj)
	}
	detector.LogConflicts()
	return out, nil
}
