package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-duets-be/pkg/corpus"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL})
}

func TestSearchSectionsFiltersQuoteSubsections(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Neil Gaiman", r.URL.Query().Get("page"))
		assert.Equal(t, "sections", r.URL.Query().Get("prop"))
		fmt.Fprint(w, `{"parse":{"sections":[
			{"index":"1","number":"1"},
			{"index":"2","number":"1.1"},
			{"index":"3","number":"1.2"},
			{"index":"4","number":"1.3"},
			{"index":"5","number":"2"}]}}`)
	})

	sections, err := client.SearchSections(context.Background(), "Neil Gaiman")

	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, sections)
}

func TestSearchSectionsMissingPageIsSubjectNotFound(t *testing.T) {
	// Also covers a name missing its special characters: the page title does
	// not resolve and the API reports missingtitle.
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":"missingtitle"}}`)
	})

	_, err := client.SearchSections(context.Background(), "Anais Nin")

	assert.ErrorIs(t, err, corpus.ErrSubjectNotFound)
}

func TestSearchSectionsNoQuoteSections(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"parse":{"sections":[{"index":"1","number":"1"}]}}`)
	})

	_, err := client.SearchSections(context.Background(), "asdf")

	assert.ErrorIs(t, err, corpus.ErrSubjectNotFound)
}

func TestSectionQuotesReturnsHTML(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("section"))
		fmt.Fprint(w, `{"parse":{"text":{"*":"<li>Fairy tales are more than true.</li>"}}}`)
	})

	text, err := client.SectionQuotes(context.Background(), "Neil Gaiman", "2")

	require.NoError(t, err)
	assert.Equal(t, "<li>Fairy tales are more than true.</li>", text)
}

func TestSectionQuotesEmptyIsContentNotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"parse":{"text":{"*":""}}}`)
	})

	_, err := client.SectionQuotes(context.Background(), "Neil Gaiman", "2")

	assert.ErrorIs(t, err, corpus.ErrContentNotFound)
}
