package schema

import (
	"reflect"
	"testing"

	"github.com/pressmark/schemald/internal/storetest"
	"github.com/pressmark/schemald/pkg/types"
)

func TestRecipeGenerate(t *testing.T) {
	store := storetest.New()
	post := &types.Post{ID: 16, Type: "recipe", Title: "Pancakes"}
	store.AddPost(post, map[string]string{
		"ingredients":  "2 eggs\n1 cup flour\n\n1 cup milk",
		"instructions": "Mix everything.\nFry until golden.",
		"prep":         "10 minutes",
		"cook":         "1 hour",
	})
	cfg := &types.SchemaConfig{
		PostType: "recipe",
		MetaMap: map[string]any{
			"name":               "post:post_title",
			"recipeIngredient":   "meta:ingredients",
			"recipeInstructions": "meta:instructions",
			"prepTime":           "meta:prep",
			"cookTime":           "meta:cook",
			"author":             "Jane Doe",
		},
	}
	g, _ := Get("recipe")
	props := g.Generate(testContext(store, cfg, post))

	ingredients, ok := props["recipeIngredient"].([]string)
	if !ok {
		t.Fatalf("recipeIngredient = %T", props["recipeIngredient"])
	}
	if !reflect.DeepEqual(ingredients, []string{"2 eggs", "1 cup flour", "1 cup milk"}) {
		t.Errorf("recipeIngredient = %v", ingredients)
	}

	steps, ok := props["recipeInstructions"].([]any)
	if !ok || len(steps) != 2 {
		t.Fatalf("recipeInstructions = %v", props["recipeInstructions"])
	}
	second := steps[1].(map[string]any)
	if second["@type"] != "HowToStep" || second["position"] != 2 || second["text"] != "Fry until golden." {
		t.Errorf("second step = %v", second)
	}

	if props["prepTime"] != "PT10M" || props["cookTime"] != "PT1H" {
		t.Errorf("durations = %v / %v", props["prepTime"], props["cookTime"])
	}
	author := props["author"].(map[string]any)
	if author["@type"] != "Person" {
		t.Errorf("author = %v", author)
	}
}

func TestMedicalGenerate(t *testing.T) {
	store := storetest.New()
	post := &types.Post{ID: 17, Type: "condition", Title: "Migraine"}
	store.AddPost(post, map[string]string{
		"symptoms":   "Headache\nNausea",
		"treatments": "Rest",
	})
	cfg := &types.SchemaConfig{
		PostType: "condition",
		MetaMap: map[string]any{
			"name":              "post:post_title",
			"signOrSymptom":     "meta:symptoms",
			"possibleTreatment": "meta:treatments",
		},
	}
	g, _ := Get("medical")
	props := g.Generate(testContext(store, cfg, post))

	symptoms, ok := props["signOrSymptom"].([]any)
	if !ok || len(symptoms) != 2 {
		t.Fatalf("signOrSymptom = %v", props["signOrSymptom"])
	}
	first := symptoms[0].(map[string]any)
	if first["@type"] != "MedicalSignOrSymptom" || first["name"] != "Headache" {
		t.Errorf("first symptom = %v", first)
	}
	treatments := props["possibleTreatment"].([]any)
	if treatments[0].(map[string]any)["@type"] != "MedicalTherapy" {
		t.Errorf("treatments = %v", treatments)
	}
}

func TestWebsiteSearchAction(t *testing.T) {
	store := storetest.New()
	store.Options[types.OptionSiteName] = "My Blog"
	store.Options[types.OptionSiteURL] = "https://example.com"
	cfg := &types.SchemaConfig{
		PostType: types.ScopeGlobal,
		MetaMap: map[string]any{
			"name":       "site:blogname",
			"url":        "site:siteurl",
			"search_url": "site:siteurl",
		},
	}
	g, _ := Get("website")
	props := g.Generate(testContext(store, cfg, nil))

	if props["name"] != "My Blog" || props["url"] != "https://example.com" {
		t.Errorf("props = %v", props)
	}
	action, ok := props["potentialAction"].(map[string]any)
	if !ok {
		t.Fatalf("potentialAction = %T", props["potentialAction"])
	}
	target := action["target"].(map[string]any)
	if target["urlTemplate"] != "https://example.com/?s={search_term_string}" {
		t.Errorf("urlTemplate = %v", target["urlTemplate"])
	}
	if action["query-input"] != "required name=search_term_string" {
		t.Errorf("query-input = %v", action["query-input"])
	}
}
