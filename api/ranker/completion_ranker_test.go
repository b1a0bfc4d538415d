package ranker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caffind-server/models"
	"caffind-server/models/cafe"
)

func rankIDs(cafes []cafe.Cafe) []string {
	ids := make([]string, len(cafes))
	for i, c := range cafes {
		ids[i] = c.ID
	}
	return ids
}

func TestReorderByIDList(t *testing.T) {
	cafes := []cafe.Cafe{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}}

	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{"full ordering", "3, 1, 4, 2", []string{"3", "1", "4", "2"}},
		{"unmentioned appended in original order", "3", []string{"3", "1", "2", "4"}},
		{"unknown ids ignored", "9, 2, 8, 1", []string{"2", "1", "3", "4"}},
		{"duplicates ignored", "2, 2, 1", []string{"2", "1", "3", "4"}},
		{"empty response keeps original order", "", []string{"1", "2", "3", "4"}},
		{"whitespace and stray commas", " 4 ,, 1 ", []string{"4", "1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReorderByIDList(cafes, tt.response)
			assert.Equal(t, tt.want, rankIDs(got))
		})
	}
}

func completionResponse(content string) string {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestCompletionRanker_RanksFromResponse(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionResponse("2, 3, 1")))
	}))
	defer srv.Close()

	cafes := []cafe.Cafe{
		{ID: "1", Name: "Town Hall Cafe", Rating: 3.9},
		{ID: "2", Name: "The Urban Brew", Rating: 4.6},
		{ID: "3", Name: "Green Leaf Café", Rating: 4.1},
	}
	rk := NewCompletionRanker(srv.URL, "test-key", "gpt-3.5-turbo", 2*time.Second)

	ranked, err := rk.Rank(context.Background(), cafes, models.Preferences{Mood: "relaxed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1"}, rankIDs(ranked))

	// The prompt carries the preference summary and per-cafe digest.
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "gpt-3.5-turbo", gotReq.Model)
	assert.Contains(t, gotReq.Messages[1].Content, "- Mood: relaxed")
	assert.Contains(t, gotReq.Messages[1].Content, "ID: 2, Name: The Urban Brew")
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
	assert.Equal(t, 200, gotReq.MaxTokens)
}

func TestCompletionRanker_ErrorStatusSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	rk := NewCompletionRanker(srv.URL, "test-key", "gpt-3.5-turbo", 2*time.Second)
	_, err := rk.Rank(context.Background(), []cafe.Cafe{{ID: "1"}}, models.Preferences{})
	assert.Error(t, err)
}

func TestCompletionRanker_EmptyChoicesSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	rk := NewCompletionRanker(srv.URL, "test-key", "gpt-3.5-turbo", 2*time.Second)
	_, err := rk.Rank(context.Background(), []cafe.Cafe{{ID: "1"}}, models.Preferences{})
	assert.Error(t, err)
}

func TestCompletionRanker_TimeoutSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	rk := NewCompletionRanker(srv.URL, "test-key", "gpt-3.5-turbo", 50*time.Millisecond)
	_, err := rk.Rank(context.Background(), []cafe.Cafe{{ID: "1"}}, models.Preferences{})
	assert.Error(t, err)
}

func TestBuildPrompt_DefaultsForEmptyFields(t *testing.T) {
	prompt := buildPrompt([]cafe.Cafe{{ID: "1", Name: "Town Hall Cafe"}}, models.Preferences{})
	assert.Contains(t, prompt, "- Mood: Not specified")
	assert.Contains(t, prompt, "- Dietary Restrictions: None")
	assert.Contains(t, prompt, "comma-separated, no explanations")
}
