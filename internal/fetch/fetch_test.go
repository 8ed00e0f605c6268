package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Posting body</body></html>"))
	}))
	defer srv.Close()

	page, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.HTML, "Posting body")
	assert.Contains(t, page.ContentType, "text/html")
}

func TestURL_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	page, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestExtractPostingText_PrefersPostingSelector(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">
			<p>Join our data team.</p>
			<p>Requirements: Python, SQL.</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Join our data team.")
	assert.Contains(t, text, "Requirements: Python, SQL.")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractPostingText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting with no wrapper.</p></body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting with no wrapper.")
}

func TestTitle_PrefersH1(t *testing.T) {
	html := `<html><head><title>Board - Acme</title></head><body><h1>Marketing Intern</h1></body></html>`

	title, err := Title(html)
	require.NoError(t, err)
	assert.Equal(t, "Marketing Intern", title)
}

func TestTitle_FallsBackToPageTitle(t *testing.T) {
	html := `<html><head><title>Junior Accountant | Acme Careers</title></head><body></body></html>`

	title, err := Title(html)
	require.NoError(t, err)
	assert.Equal(t, "Junior Accountant | Acme Careers", title)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short stub   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 50)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  first line  \n\n\n   second line\n   \n"
	assert.Equal(t, "first line\nsecond line", cleanWhitespace(in))
}
