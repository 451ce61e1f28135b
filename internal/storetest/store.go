// Package storetest provides in-memory store implementations for unit
// tests of the resolution and rendering pipeline.
package storetest

import (
	"sort"

	"github.com/pressmark/schemald/pkg/types"
)

// Store is an in-memory implementation of types.ContentStore,
// types.SiteStore, and types.ConfigStore. The zero value is not usable;
// call New.
type Store struct {
	Posts     map[int64]*types.Post
	PostMetas map[int64]map[string]string
	Users     map[int64]*types.User
	UserMetas map[int64]map[string]string
	Terms     map[int64]map[string][]string // postID -> taxonomy -> names
	Options   map[string]string
	Configs   map[string]*types.SchemaConfig
}

// Interface checks.
var (
	_ types.ContentStore = (*Store)(nil)
	_ types.SiteStore    = (*Store)(nil)
	_ types.ConfigStore  = (*Store)(nil)
)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		Posts:     make(map[int64]*types.Post),
		PostMetas: make(map[int64]map[string]string),
		Users:     make(map[int64]*types.User),
		UserMetas: make(map[int64]map[string]string),
		Terms:     make(map[int64]map[string][]string),
		Options:   make(map[string]string),
		Configs:   make(map[string]*types.SchemaConfig),
	}
}

// AddPost registers a post and its meta in one call.
func (s *Store) AddPost(p *types.Post, meta map[string]string) {
	s.Posts[p.ID] = p
	if meta != nil {
		s.PostMetas[p.ID] = meta
	}
}

// AddUser registers a user and its meta in one call.
func (s *Store) AddUser(u *types.User, meta map[string]string) {
	s.Users[u.ID] = u
	if meta != nil {
		s.UserMetas[u.ID] = meta
	}
}

// SetTerms attaches term names for a taxonomy to a post.
func (s *Store) SetTerms(postID int64, taxonomy string, names ...string) {
	if s.Terms[postID] == nil {
		s.Terms[postID] = make(map[string][]string)
	}
	s.Terms[postID][taxonomy] = names
}

func (s *Store) GetPost(id int64) (*types.Post, error) {
	p, ok := s.Posts[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return p, nil
}

func (s *Store) PostMeta(postID int64, key string) (string, error) {
	return s.PostMetas[postID][key], nil
}

func (s *Store) UserMeta(userID int64, key string) (string, error) {
	return s.UserMetas[userID][key], nil
}

func (s *Store) GetUser(id int64) (*types.User, error) {
	u, ok := s.Users[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return u, nil
}

func (s *Store) TermNames(postID int64, taxonomy string) ([]string, error) {
	return s.Terms[postID][taxonomy], nil
}

func (s *Store) TaxonomyExists(taxonomy string) (bool, error) {
	for _, byTax := range s.Terms {
		if len(byTax[taxonomy]) > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) PostsWithMeta(postType, key, value string) ([]int64, error) {
	var ids []int64
	for id, p := range s.Posts {
		if p.Type == postType && s.PostMetas[id][key] == value {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *Store) Option(key string) (string, error) {
	return s.Options[key], nil
}

func (s *Store) SchemaConfig(key string) (*types.SchemaConfig, error) {
	return s.Configs[key], nil
}

func (s *Store) SchemaKeys() ([]string, error) {
	keys := make([]string, 0, len(s.Configs))
	for k := range s.Configs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
