package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer serves the full router over a per-test in-memory
// database with foreign keys enforced.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	server := httptest.NewServer(newRouter(database.New(db), withConfig(map[string]string{})))

	t.Cleanup(func() {
		server.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return server
}

func postForm(t *testing.T, server *httptest.Server, path string, form url.Values) *http.Response {
	t.Helper()

	resp, err := http.Post(server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, server *httptest.Server, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func venueForm() url.Values {
	return url.Values{
		"name":                {"The Fillmore"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1805 Geary Blvd"},
		"phone":               {"415-555-0100"},
		"genres":              {"Rock", "Soul"},
		"image_link":          {"https://example.com/fillmore.jpg"},
		"facebook_link":       {"https://facebook.com/fillmore"},
		"website_link":        {"https://fillmore.example.com"},
		"seeking_talent":      {"y"},
		"seeking_description": {"Always booking"},
	}
}

func artistForm() url.Values {
	return url.Values{
		"name":   {"Jane Doe"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"415-555-0101"},
		"genres": {"Jazz"},
	}
}

// createVenue and createArtist drive the real create endpoints and
// return the new entity's id.
func createVenue(t *testing.T, server *httptest.Server, form url.Values) uint {
	t.Helper()

	resp := postForm(t, server, "/venues/create", form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notice := decode[Notice](t, resp)
	require.Equal(t, "success", notice.Status)
	require.NotZero(t, notice.VenueID)
	return notice.VenueID
}

func createArtist(t *testing.T, server *httptest.Server, form url.Values) uint {
	t.Helper()

	resp := postForm(t, server, "/artists/create", form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	notice := decode[Notice](t, resp)
	require.Equal(t, "success", notice.Status)
	require.NotZero(t, notice.ArtistID)
	return notice.ArtistID
}
