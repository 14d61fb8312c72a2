package cse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Paginates(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		var items []Item
		if start == 1 {
			for i := 0; i < 10; i++ {
				items = append(items, Item{Link: "https://a.in/" + strconv.Itoa(i)})
			}
		} else {
			items = append(items, Item{Link: "https://b.in/final"})
		}
		json.NewEncoder(w).Encode(searchResponse{Items: items})
	}))
	defer srv.Close()

	c := NewClient("k", "cx", WithBaseURL(srv.URL))
	items, err := c.Search(context.Background(), "evaporator manufacturer", 11)
	require.NoError(t, err)
	assert.Len(t, items, 11)
	assert.Equal(t, "https://b.in/final", items[10].Link)
}

func TestSearch_TruncatesToMax(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var items []Item
		for i := 0; i < 10; i++ {
			items = append(items, Item{Link: "https://x.in/" + strconv.Itoa(i)})
		}
		json.NewEncoder(w).Encode(searchResponse{Items: items})
	}))
	defer srv.Close()

	c := NewClient("k", "cx", WithBaseURL(srv.URL))
	items, err := c.Search(context.Background(), "q", 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSearch_SiteRestrict(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer srv.Close()

	c := NewClient("k", "cx", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "pumps", 5, WithSiteRestrict("indiamart.com"))
	require.NoError(t, err)
	assert.Equal(t, "site:indiamart.com pumps", gotQuery)

	// An explicit site: filter in the query is left alone.
	_, err = c.Search(context.Background(), "site:example.com pumps", 5, WithSiteRestrict("indiamart.com"))
	require.NoError(t, err)
	assert.Equal(t, "site:example.com pumps", gotQuery)
}

func TestSearch_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer srv.Close()

	c := NewClient("k", "cx", WithBaseURL(srv.URL))
	items, err := c.Search(context.Background(), "nothing", 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearch_RetriesThenFails(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("k", "cx", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "q", 5)
	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}
