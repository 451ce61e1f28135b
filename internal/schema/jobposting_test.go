package schema

import (
	"testing"

	"github.com/pressmark/schemald/internal/storetest"
	"github.com/pressmark/schemald/pkg/types"
)

func jobFixture(meta map[string]string) (*storetest.Store, *types.Post) {
	store := storetest.New()
	post := &types.Post{ID: 9, Type: "job_listing", Title: "Go Engineer"}
	store.AddPost(post, meta)
	return store, post
}

func TestJobPostingGenerate(t *testing.T) {
	store, post := jobFixture(map[string]string{
		"job_salary":     "$50,000 - $70,000 per year",
		"job_deadline":   "2025-09-30",
		"job_company":    "Acme Inc.",
		"job_type":       "full time",
		"job_education":  "Bachelor's degree required",
		"job_experience": "3 years",
	})
	cfg := &types.SchemaConfig{
		PostType: "job_listing",
		MetaMap: map[string]any{
			"title":                  "post:post_title",
			"datePosted":             "2025-08-01",
			"validThrough":           "meta:job_deadline",
			"baseSalary":             "meta:job_salary",
			"hiringOrganization":     "meta:job_company",
			"employmentType":         "meta:job_type",
			"educationRequirements":  "meta:job_education",
			"experienceRequirements": "meta:job_experience",
		},
	}
	g, _ := Get("jobposting")
	props := g.Generate(testContext(store, cfg, post))

	if props["title"] != "Go Engineer" {
		t.Errorf("title = %v", props["title"])
	}
	if props["datePosted"] != "2025-08-01T00:00:00Z" {
		t.Errorf("datePosted = %v", props["datePosted"])
	}
	if props["validThrough"] != "2025-09-30T23:59:59Z" {
		t.Errorf("validThrough = %v", props["validThrough"])
	}

	salary, ok := props["baseSalary"].(map[string]any)
	if !ok {
		t.Fatalf("baseSalary = %T", props["baseSalary"])
	}
	if salary["currency"] != "USD" {
		t.Errorf("currency = %v", salary["currency"])
	}
	value := salary["value"].(map[string]any)
	if value["minValue"] != 50000.0 || value["maxValue"] != 70000.0 || value["unitText"] != "YEAR" {
		t.Errorf("salary value = %v", value)
	}

	org := props["hiringOrganization"].(map[string]any)
	if org["@type"] != "Organization" || org["name"] != "Acme Inc." {
		t.Errorf("hiringOrganization = %v", org)
	}
	if props["employmentType"] != "FULL_TIME" {
		t.Errorf("employmentType = %v", props["employmentType"])
	}
	if props["educationRequirements"] != "bachelor degree" {
		t.Errorf("educationRequirements = %v", props["educationRequirements"])
	}
	exp := props["experienceRequirements"].(map[string]any)
	if exp["monthsOfExperience"] != 36 {
		t.Errorf("experienceRequirements = %v", exp)
	}
}

func TestJobLocationStructured(t *testing.T) {
	store, post := jobFixture(map[string]string{
		"job_city":    "Lahore",
		"job_country": "Pakistan",
	})
	cfg := &types.SchemaConfig{
		PostType: "job_listing",
		MetaMap: map[string]any{
			"jobLocation": map[string]any{
				"city":    "meta:job_city",
				"country": "meta:job_country",
			},
		},
	}
	g, _ := Get("jobposting")
	props := g.Generate(testContext(store, cfg, post))

	place, ok := props["jobLocation"].(map[string]any)
	if !ok {
		t.Fatalf("jobLocation = %T", props["jobLocation"])
	}
	addr := place["address"].(map[string]any)
	if addr["addressLocality"] != "Lahore" || addr["addressCountry"] != "Pakistan" {
		t.Errorf("address = %v", addr)
	}
}

func TestJobLocationPlainText(t *testing.T) {
	store, post := jobFixture(map[string]string{"job_location": "Remote, Anywhere"})
	cfg := &types.SchemaConfig{
		PostType: "job_listing",
		MetaMap:  map[string]any{"jobLocation": "meta:job_location"},
	}
	g, _ := Get("jobposting")
	props := g.Generate(testContext(store, cfg, post))

	place := props["jobLocation"].(map[string]any)
	addr := place["address"].(map[string]any)
	if addr["streetAddress"] != "Remote, Anywhere" {
		t.Errorf("address = %v", addr)
	}
}

func TestJobExperienceFreeText(t *testing.T) {
	g := &jobPostingGenerator{}
	got := g.experience("team leadership background")
	if got != "team leadership background" {
		t.Errorf("experience = %v", got)
	}
}
