// Conflict detection between schemas rendered into the same page head.
package schema

import "go.uber.org/zap"

// conflictFamilies groups schema types that must not co-occur on one page.
// Two objects conflict when their resolved types land in the same family.
var conflictFamilies = map[string]string{
	"Article":       "article",
	"BlogPosting":   "article",
	"NewsArticle":   "article",
	"Organization":  "organization",
	"Corporation":   "organization",
	"LocalBusiness": "organization",
}

// Detector arbitrates which schemas reach a single rendered head. The first
// accepted member of a family wins; later members of the same family are
// rejected. A detector covers one render and is not reused across pages.
type Detector struct {
	log      *zap.Logger
	accepted []conflictEntry
	rejected []conflictEntry
}

type conflictEntry struct {
	schemaType string
	family     string
	source     string
}

// NewDetector returns a detector logging through the given logger. A nil
// logger disables logging.
func NewDetector(log *zap.Logger) *Detector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Detector{log: log}
}

// familyOf maps a resolved @type to its conflict family. Types outside the
// known families form a singleton family of their own type, so duplicates
// of the same type still conflict while unrelated types never do.
func familyOf(schemaType string) string {
	if family, ok := conflictFamilies[schemaType]; ok {
		return family
	}
	return schemaType
}

// CanOutput reports whether an object may join the head given what has
// already been accepted. Acceptance is recorded, so call order decides the
// winner. source identifies the schema configuration for conflict logging.
func (d *Detector) CanOutput(obj map[string]any, source string) bool {
	schemaType, _ := obj["@type"].(string)
	if schemaType == "" {
		return false
	}
	family := familyOf(schemaType)
	entry := conflictEntry{schemaType: schemaType, family: family, source: source}

	for _, prior := range d.accepted {
		if prior.family == family {
			d.rejected = append(d.rejected, entry)
			return false
		}
	}
	d.accepted = append(d.accepted, entry)
	return true
}

// Rejected returns the sources of every schema rejected so far.
func (d *Detector) Rejected() []string {
	out := make([]string, 0, len(d.rejected))
	for _, entry := range d.rejected {
		out = append(out, entry.source)
	}
	return out
}

// LogConflicts emits one log line per rejected schema, naming the winner
// it lost to.
func (d *Detector) LogConflicts() {
	for _, entry := range d.rejected {
		winner := ""
		for _, prior := range d.accepted {
			if prior.family == entry.family {
				winner = prior.source
				break
			}
		}
		d.log.Warn("schema conflict, dropping later schema",
			zap.String("rejected", entry.source),
			zap.String("rejected_type", entry.schemaType),
			zap.String("kept", winner),
			zap.String("family", entry.family),
		)
	}
}
