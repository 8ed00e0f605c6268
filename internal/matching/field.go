package matching

import "strings"

// Field alignment tiers: same domain group, substring relation, unrelated.
const (
	fullAlignment    = 1.0
	partialAlignment = 0.7
)

// fieldSectors maps a canonical field of study to the sector keywords that
// count as full alignment. Like the synonym table it is closed, loaded
// once, and never mutated.
var fieldSectors = map[string][]string{
	"computer science":        {"it", "software", "technology", "tech", "engineering", "development"},
	"information technology":  {"it", "software", "technology", "tech", "telecom"},
	"engineering":             {"engineering", "manufacturing", "construction", "energy", "automotive"},
	"business administration": {"business", "management", "consulting", "administration", "operations"},
	"economics":               {"finance", "banking", "economics", "insurance", "consulting"},
	"accounting":              {"accounting", "finance", "audit", "banking"},
	"marketing":               {"marketing", "advertising", "media", "sales", "communications"},
	"medicine":                {"healthcare", "health", "medical", "pharmaceutical", "hospital"},
	"nursing":                 {"healthcare", "health", "medical", "hospital"},
	"law":                     {"legal", "law", "compliance", "government"},
	"education":               {"education", "teaching", "training", "academia"},
	"design":                  {"design", "creative", "arts", "advertising"},
	"agriculture":             {"agriculture", "farming", "food", "agribusiness"},
	"hospitality":             {"hospitality", "tourism", "hotel", "catering"},
}

// FieldAlignment scores how a candidate's field of study relates to an
// opportunity's sector: 1.0 when both belong to the same domain group, 0.7
// when one is a substring of the other, 0.0 otherwise. Inputs are raw
// strings; normalization happens here.
func FieldAlignment(fieldOfStudy, sector string) float64 {
	field := Normalize(fieldOfStudy)
	sect := Normalize(sector)
	if field == "" || sect == "" {
		return 0
	}

	for canonical, sectors := range fieldSectors {
		if inFieldGroup(field, canonical, sectors) && inFieldGroup(sect, canonical, sectors) {
			return fullAlignment
		}
	}

	if strings.Contains(field, sect) || strings.Contains(sect, field) {
		return partialAlignment
	}
	return 0
}

func inFieldGroup(s, canonical string, sectors []string) bool {
	if matchesTerm(s, canonical) {
		return true
	}
	for _, keyword := range sectors {
		if matchesTerm(s, keyword) {
			return true
		}
	}
	return false
}
