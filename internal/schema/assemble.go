// Assembly of generator output into a final JSON-LD object.
package schema

// Schema-type families that receive shared defaults during assembly.
var (
	articleFamily = map[string]bool{
		"Article":     true,
		"BlogPosting": true,
		"NewsArticle": true,
	}
	organizationFamily = map[string]bool{
		"Organization":  true,
		"Corporation":   true,
		"LocalBusiness": true,
	}
)

// Assemble runs a generator and merges its properties into a base object
// carrying @context and @type, applies family-wide defaults, strips address
// sub-fields that may only appear nested, and cleans out empty values.
// Returns nil when the object carries no identity beyond its @type.
func Assemble(g Generator, c *Context) map[string]any {
	obj := map[string]any{
		"@context": "https://schema.org",
		"@type":    g.Type(c.Config),
	}

	props := g.Generate(c)
	for key, v := range props {
		if key == "@context" || key == "@type" {
			continue
		}
		obj[key] = v
	}

	applyDefaults(obj, c)

	// Address sub-fields belong inside a PostalAddress, never at the top.
	for _, field := range addressSubFields {
		delete(obj, field)
	}

	obj = Clean(obj)
	if onlyContext(obj) {
		return nil
	}
	return obj
}

// applyDefaults fills the per-family properties every member type carries
// regardless of mappings: article dates and canonical URL, event start
// fallback, organization logo fallback.
func applyDefaults(obj map[string]any, c *Context) {
	schemaType, _ := obj["@type"].(string)

	switch {
	case articleFamily[schemaType]:
		if c.Post != nil {
			if !c.Post.Date.IsZero() {
				setDefault(obj, "datePublished", c.Post.Date.Format(w3cLayout))
			}
			if !c.Post.Modified.IsZero() {
				setDefault(obj, "dateModified", c.Post.Modified.Format(w3cLayout))
			}
		}
		if url := c.permalink(); url != "" {
			setDefault(obj, "url", url)
			setDefault(obj, "mainEntityOfPage", map[string]any{
				"@type": "WebPage",
				"@id":   url,
			})
		}
	case schemaType == "Event":
		setDefault(obj, "startDate", c.now().Format(w3cLayout))
	case organizationFamily[schemaType]:
		if logo := c.siteLogo(); logo != "" {
			setDefault(obj, "logo", imageObject(logo))
		}
	}
}

// setDefault assigns v only when the key is absent or empty.
func setDefault(obj map[string]any, key string, v any) {
	if existing, ok := obj[key]; ok && !IsEmpty(existing) {
		return
	}
	if IsEmpty(v) {
		return
	}
	obj[key] = v
}

// onlyContext reports whether an assembled object carries nothing beyond
// its @context and @type.
func onlyContext(obj map[string]any) bool {
	for key := range obj {
		if key != "@context" && key != "@type" {
			return false
		}
	}
	return true
}
