package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Jane Doe\r\nSkills: Go, Docker\r\n"))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills: Go, Docker", text)
}

func TestIngestFromURL_HTML(t *testing.T) {
	page := `<html><head><style>.x{}</style></head><body>
		<nav>Home | About</nav>
		<main>
			<h1>Jane Doe</h1>
			<h2>Skills</h2>
			<p>Python, Docker</p>
		</main>
		<footer>Copyright</footer>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	text, err := IngestFromURL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python, Docker")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "Copyright")
}

func TestIngestFromURL_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL)
	require.Error(t, err)
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	_, err := IngestFromURL(context.Background(), "not-a-url")
	require.Error(t, err)
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestExtractMainText_SeparateLinesPerElement(t *testing.T) {
	html := `<body><div class="resume"><h2>Experience</h2><p>Engineer at Acme</p></div></body>`
	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Experience\n")
	assert.Contains(t, text, "Engineer at Acme")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText("<body><p>Just a paragraph</p></body>")
	require.NoError(t, err)
	assert.Equal(t, "Just a paragraph", text)
}
