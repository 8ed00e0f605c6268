package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Acme Careers</title></head>
<body>
	<nav>Home | Jobs | About</nav>
	<h1>Junior Data Analyst Internship</h1>
	<div class="job-description">
		<p>We are looking for an intern to join our data team.</p>
		<p>You will build dashboards and reports for our software products.</p>
		<p>Requirements: Python, SQL, Microsoft Excel and strong communication.</p>
	</div>
	<footer>Copyright Acme</footer>
</body>
</html>`

func TestIngestURL_BuildsOpportunity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	opp, err := IngestURL(context.Background(), srv.URL, false, false)
	require.NoError(t, err)

	assert.Equal(t, "Junior Data Analyst Internship", opp.Title)
	assert.Equal(t, srv.URL, opp.URL)
	assert.Contains(t, opp.Description, "build dashboards")
	assert.NotContains(t, opp.Description, "Copyright Acme")
}

func TestIngestURL_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := IngestURL(context.Background(), srv.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestFromContent_ExtractsSkillsAndSector(t *testing.T) {
	text := "We are looking for an intern to join our data team.\n" +
		"You will build dashboards for our software products.\n" +
		"Requirements: Python, SQL, Microsoft Excel and strong communication."

	opp, err := FromContent(postingHTML, text, "https://jobs.example.com/1")
	require.NoError(t, err)

	assert.Contains(t, opp.RequiredSkills, "Python")
	assert.Contains(t, opp.RequiredSkills, "SQL")
	assert.Contains(t, opp.RequiredSkills, "Microsoft Excel")
	assert.Contains(t, opp.RequiredSkills, "Communication")
	require.NotNil(t, opp.Sector)
	assert.Equal(t, "technology", *opp.Sector)
}

func TestFromContent_EmptyText(t *testing.T) {
	_, err := FromContent(postingHTML, "", "https://jobs.example.com/1")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestFromContent_NoTitle(t *testing.T) {
	_, err := FromContent("<html><body><p>text</p></body></html>", "text", "https://jobs.example.com/1")
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	// "Java" must not fire on "JavaScript"
	skills := ExtractSkills("Frontend role working with JavaScript and React")
	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "React")
	assert.NotContains(t, skills, "Java")
}

func TestExtractSkills_SymbolTerms(t *testing.T) {
	skills := ExtractSkills("Systems role using C++ and C# with Node.js services")
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
	assert.Contains(t, skills, "Node.js")
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Nil(t, ExtractSkills(""))
	assert.Nil(t, ExtractSkills("no recognizable abilities here"))
}

func TestGuessSector(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"technology", "software developer internship", "technology"},
		{"finance", "accounting assistant for audit season", "finance"},
		{"marketing", "social media coordinator", "marketing"},
		{"no match", "general helper wanted", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuessSector(tt.text))
		})
	}
}
