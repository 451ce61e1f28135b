package schema

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func typed(schemaType string) map[string]any {
	return map[string]any{"@type": schemaType, "name": "x"}
}

func TestDetectorSameFamilyConflicts(t *testing.T) {
	d := NewDetector(nil)

	if !d.CanOutput(typed("Article"), "article") {
		t.Fatal("first article rejected")
	}
	if d.CanOutput(typed("BlogPosting"), "blog") {
		t.Error("second article-family schema accepted")
	}
	if d.CanOutput(typed("NewsArticle"), "news") {
		t.Error("third article-family schema accepted")
	}
	if !d.CanOutput(typed("Product"), "product") {
		t.Error("unrelated type rejected")
	}

	rejected := d.Rejected()
	if len(rejected) != 2 || rejected[0] != "blog" || rejected[1] != "news" {
		t.Errorf("Rejected = %v", rejected)
	}
}

func TestDetectorOrganizationFamily(t *testing.T) {
	d := NewDetector(nil)

	if !d.CanOutput(typed("LocalBusiness"), "localbusiness") {
		t.Fatal("first organization-family schema rejected")
	}
	if d.CanOutput(typed("Organization"), "organization") {
		t.Error("second organization-family schema accepted")
	}
	if d.CanOutput(typed("Corporation"), "corporation") {
		t.Error("third organization-family schema accepted")
	}
}

func TestDetectorDuplicateSingletonType(t *testing.T) {
	d := NewDetector(nil)

	if !d.CanOutput(typed("FAQPage"), "faq-a") {
		t.Fatal("first FAQPage rejected")
	}
	if d.CanOutput(typed("FAQPage"), "faq-b") {
		t.Error("duplicate FAQPage accepted")
	}
	if !d.CanOutput(typed("Event"), "event") {
		t.Error("unrelated Event rejected")
	}
}

func TestDetectorMissingType(t *testing.T) {
	d := NewDetector(nil)
	if d.CanOutput(map[string]any{"name": "x"}, "broken") {
		t.Error("object without @type accepted")
	}
}

func TestDetectorLogConflicts(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDetector(zap.New(core))

	d.CanOutput(typed("Article"), "article")
	d.CanOutput(typed("BlogPosting"), "blog")
	d.LogConflicts()

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["rejected"] != "blog" || fields["kept"] != "article" {
		t.Errorf("log fields = %v", fields)
	}
}
