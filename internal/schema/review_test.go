package schema

import (
	"testing"

	"github.com/pressmark/schemald/internal/storetest"
	"github.com/pressmark/schemald/pkg/types"
)

func TestReviewGenerate(t *testing.T) {
	store := storetest.New()
	post := &types.Post{ID: 5, Type: "review"}
	store.AddPost(post, map[string]string{
		"reviewed_item": "Widget Pro",
		"score":         "4",
	})
	cfg := &types.SchemaConfig{
		PostType: "review",
		MetaMap: map[string]any{
			"itemReviewed":      "meta:reviewed_item",
			"itemReviewed_type": "Product",
			"reviewRating":      "meta:score",
			"author":            "Jane Doe",
		},
	}
	g, _ := Get("review")
	props := g.Generate(testContext(store, cfg, post))

	item, ok := props["itemReviewed"].(map[string]any)
	if !ok {
		t.Fatalf("itemReviewed = %T", props["itemReviewed"])
	}
	if item["@type"] != "Product" || item["name"] != "Widget Pro" {
		t.Errorf("itemReviewed = %v", item)
	}
	if _, leaked := props["itemReviewed_type"]; leaked {
		t.Error("itemReviewed_type leaked to the top level")
	}

	rating := props["reviewRating"].(map[string]any)
	if rating["ratingValue"] != "4" {
		t.Errorf("reviewRating = %v", rating)
	}
	author := props["author"].(map[string]any)
	if author["@type"] != "Person" || author["name"] != "Jane Doe" {
		t.Errorf("author = %v", author)
	}
}

func TestReviewItemTypeDefaultsToThing(t *testing.T) {
	store := storetest.New()
	post := &types.Post{ID: 6, Type: "review"}
	store.AddPost(post, map[string]string{"reviewed_item": "Something"})
	cfg := &types.SchemaConfig{
		PostType: "review",
		MetaMap:  map[string]any{"itemReviewed": "meta:reviewed_item"},
	}
	g, _ := Get("review")
	props := g.Generate(testContext(store, cfg, post))

	item := props["itemReviewed"].(map[string]any)
	if item["@type"] != "Thing" {
		t.Errorf("itemReviewed @type = %v, want Thing", item["@type"])
	}
}

func TestReviewCrossPostAggregate(t *testing.T) {
	store := storetest.New()
	post := &types.Post{ID: 10, Type: "review"}
	// The rendered post's own rating must stay out of the aggregate.
	store.AddPost(post, map[string]string{"reviewed_item": "Widget Pro", "rating": "3"})
	store.AddPost(&types.Post{ID: 11, Type: "review"},
		map[string]string{"reviewed_item": "Widget Pro", "rating": "4"})
	store.AddPost(&types.Post{ID: 12, Type: "review"},
		map[string]string{"reviewed_item": "Widget Pro", "rating": "5"})
	store.AddPost(&types.Post{ID: 13, Type: "review"},
		map[string]string{"reviewed_item": "Other Thing", "rating": "1"})

	cfg := &types.SchemaConfig{
		PostType: "review",
		MetaMap:  map[string]any{"itemReviewed": "meta:reviewed_item"},
	}
	g, _ := Get("review")
	props := g.Generate(testContext(store, cfg, post))

	item := props["itemReviewed"].(map[string]any)
	agg, ok := item["aggregateRating"].(map[string]any)
	if !ok {
		t.Fatalf("aggregateRating = %T", item["aggregateRating"])
	}
	if agg["ratingValue"] != "4.5" {
		t.Errorf("ratingValue = %v", agg["ratingValue"])
	}
	if agg["reviewCount"] != 2 {
		t.Errorf("reviewCount = %v", agg["reviewCount"])
	}
}

func TestReviewLiteralItemNoAggregate(t *testing.T) {
	store := storetest.New()
	post := &types.Post{ID: 13, Type: "review"}
	store.AddPost(post, nil)
	cfg := &types.SchemaConfig{
		PostType: "review",
		MetaMap:  map[string]any{"itemReviewed": "custom:Widget Pro"},
	}
	g, _ := Get("review")
	props := g.Generate(testContext(store, cfg, post))

	item := props["itemReviewed"].(map[string]any)
	if _, ok := item["aggregateRating"]; ok {
		t.Error("aggregate computed for a non-meta mapping")
	}
}
