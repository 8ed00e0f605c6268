package ingestion

import (
	"strings"

	"github.com/amina/career-match/internal/matching"
)

// skillLexicon lists skill names scanned for in posting text. Display
// casing is what ends up in the stored opportunity; matching happens on
// the normalized form.
var skillLexicon = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"C++",
	"C#",
	"PHP",
	"Ruby",
	"HTML",
	"CSS",
	"React",
	"Vue",
	"Angular",
	"Node.js",
	"SQL",
	"PostgreSQL",
	"MySQL",
	"MongoDB",
	"Docker",
	"Kubernetes",
	"AWS",
	"Git",
	"Machine Learning",
	"Data Analysis",
	"Data Visualization",
	"Power BI",
	"Tableau",
	"Microsoft Excel",
	"Microsoft Word",
	"PowerPoint",
	"Project Management",
	"Agile",
	"Scrum",
	"Communication",
	"Teamwork",
	"Leadership",
	"Problem Solving",
	"Customer Service",
	"Digital Marketing",
	"Social Media",
	"SEO",
	"Content Writing",
	"Graphic Design",
	"UI/UX Design",
	"Figma",
	"Photoshop",
	"Accounting",
	"Bookkeeping",
	"Financial Analysis",
	"Sales",
	"Negotiation",
	"French",
	"English",
}

// ExtractSkills scans posting text for known skills and returns them in
// lexicon order, deduplicated.
func ExtractSkills(text string) []string {
	normalized := matching.Normalize(text)
	if normalized == "" {
		return nil
	}
	// Pad so word-boundary checks work at the ends too
	padded := " " + normalized + " "

	var found []string
	for _, skill := range skillLexicon {
		term := matching.Normalize(skill)
		if term == "" {
			continue
		}
		if containsTerm(padded, term) {
			found = append(found, skill)
		}
	}
	return found
}

// containsTerm reports whether padded text contains term on word
// boundaries. Terms carrying symbols (c++, c#, node.js) match anywhere
// since boundary checks misfire on them.
func containsTerm(padded, term string) bool {
	if strings.ContainsAny(term, "+#.") {
		return strings.Contains(padded, term)
	}
	return strings.Contains(padded, " "+term+" ")
}
