package ingestion

import (
	"strings"

	"github.com/amina/career-match/internal/matching"
)

// sectorKeywords maps catalog sectors to posting vocabulary that
// suggests them. First sector whose keywords hit wins, in this order.
var sectorKeywords = []struct {
	sector   string
	keywords []string
}{
	{"technology", []string{"software", "developer", "programming", "engineer", "it support", "data", "web", "cloud"}},
	{"finance", []string{"finance", "accounting", "banking", "audit", "bookkeeping", "treasury"}},
	{"marketing", []string{"marketing", "advertising", "brand", "social media", "seo", "communications"}},
	{"healthcare", []string{"health", "medical", "clinic", "hospital", "pharmacy", "nursing"}},
	{"education", []string{"teaching", "teacher", "tutor", "curriculum", "school", "training"}},
	{"design", []string{"design", "ux", "ui", "creative", "illustration"}},
	{"legal", []string{"legal", "law firm", "paralegal", "compliance"}},
	{"hospitality", []string{"hotel", "restaurant", "tourism", "hospitality", "catering"}},
	{"agriculture", []string{"farm", "agriculture", "agro", "crop", "livestock"}},
}

// GuessSector infers a catalog sector from posting text. Returns ""
// when nothing matches.
func GuessSector(text string) string {
	normalized := matching.Normalize(text)
	if normalized == "" {
		return ""
	}

	for _, entry := range sectorKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				return entry.sector
			}
		}
	}
	return ""
}
