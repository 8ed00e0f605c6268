package matching

// synonymGroups maps a canonical full term to its accepted short forms and
// domain equivalents. The table is closed and hand-curated; it is loaded
// once and never mutated so that scoring stays fully deterministic.
var synonymGroups = map[string][]string{
	"javascript":          {"js", "node", "nodejs", "node.js"},
	"typescript":          {"ts"},
	"python":              {"py", "python3"},
	"c++":                 {"cpp", "cplusplus"},
	"c#":                  {"csharp", "c sharp", ".net"},
	"react":               {"reactjs", "react.js"},
	"vue":                 {"vuejs", "vue.js"},
	"kubernetes":          {"k8s"},
	"amazon web services": {"aws"},
	"machine learning":    {"ml", "ai", "artificial intelligence", "deep learning"},
	"user experience":     {"ux", "ui", "user interface"},
	"database":            {"sql", "mysql", "postgresql", "postgres"},
	"version control":     {"git", "github", "gitlab"},
	"project management":  {"agile", "scrum", "kanban"},
	"communication":       {"public speaking", "presentation skills"},
	"microsoft excel":     {"excel", "spreadsheets"},
	"graphic design":      {"photoshop", "illustrator", "figma"},
	"accounting":          {"bookkeeping", "quickbooks"},
	"digital marketing":   {"seo", "sem", "social media marketing"},
	"data analysis":       {"data analytics", "business intelligence", "power bi", "tableau"},
}

// sameSynonymGroup reports whether both strings belong to the same synonym
// group. A string belongs to a group if it equals, contains, or is
// contained by the canonical term or any of its variants.
func sameSynonymGroup(a, b string) bool {
	for canonical, variants := range synonymGroups {
		if inSynonymGroup(a, canonical, variants) && inSynonymGroup(b, canonical, variants) {
			return true
		}
	}
	return false
}

func inSynonymGroup(s, canonical string, variants []string) bool {
	if matchesTerm(s, canonical) {
		return true
	}
	for _, v := range variants {
		if matchesTerm(s, v) {
			return true
		}
	}
	return false
}
