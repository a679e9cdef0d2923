package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_MintsAndReusesID(t *testing.T) {
	store := NewSessionStore("eda_session")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id := store.SessionID(rec, req)
	require.NotEmpty(t, id)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "eda_session", cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)

	// A request carrying the cookie reuses the id and sets nothing.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	assert.Equal(t, id, store.SessionID(rec2, req2))
	assert.Empty(t, rec2.Result().Cookies())
}

func TestSessionStore_SelectionsAreIndependent(t *testing.T) {
	store := NewSessionStore("eda_session")

	assert.Empty(t, store.Selection("a"), "fresh session has no selection")

	store.Select("a", "basket-size")
	store.Select("b", "references")

	assert.Equal(t, "basket-size", store.Selection("a"))
	assert.Equal(t, "references", store.Selection("b"))
	assert.Empty(t, store.Selection("c"))
}

func TestSessionStore_LastSelectionWins(t *testing.T) {
	store := NewSessionStore("eda_session")

	store.Select("a", "event-type-distribution")
	store.Select("a", "user-segmentation")
	assert.Equal(t, "user-segmentation", store.Selection("a"))
}
