package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramalMr/cocktail-advisor/internal/config"
	"github.com/ramalMr/cocktail-advisor/internal/domain"
	embeddingecho "github.com/ramalMr/cocktail-advisor/internal/embedding/echo"
	advisorhttp "github.com/ramalMr/cocktail-advisor/internal/http"
	"github.com/ramalMr/cocktail-advisor/internal/index"
	providerecho "github.com/ramalMr/cocktail-advisor/internal/provider/echo"
	"github.com/ramalMr/cocktail-advisor/internal/prefs"
)

// newTestHandler wires a full advisor on the echo providers so handler tests
// run without external APIs.
func newTestHandler(t *testing.T) *advisorhttp.Handler {
	t.Helper()

	embedder := embeddingecho.NewGenerator(64)
	idx := index.NewMemory(embedder.Dimension())
	corpus := domain.NewCorpusService(embedder, idx)

	require.NoError(t, corpus.LoadCorpus(context.Background(), []*domain.Cocktail{
		{
			ID: "11000", Name: "Mojito",
			Instructions: "Muddle mint with sugar and lime, add rum, top with soda.",
			Ingredients: []domain.Ingredient{
				{Name: "rum"}, {Name: "mint"}, {Name: "lime juice"},
				{Name: "sugar"}, {Name: "soda water"},
			},
		},
		{
			ID: "11007", Name: "Margarita",
			Instructions: "Shake tequila, triple sec and lime juice with ice.",
			Ingredients: []domain.Ingredient{
				{Name: "tequila"}, {Name: "triple sec"}, {Name: "lime juice"},
			},
		},
	}))

	advisor := domain.NewAdvisorService(
		embedder,
		providerecho.NewProvider(),
		idx,
		corpus,
		domain.NewPreferenceFilter(domain.DefaultBoostWeight),
		nil,
		prefs.NewMemory(),
		&domain.AdvisorConfig{Limit: 5, BoostWeight: domain.DefaultBoostWeight},
	)

	return advisorhttp.NewHandler(advisor, advisorhttp.NewSessionStore(), &config.ServerConfig{
		Port:           8080,
		ReadTimeout:    30,
		WriteTimeout:   30,
		RequestTimeout: 25,
	})
}

func TestHandler_HandleChat(t *testing.T) {
	t.Run("should return recommendations", func(t *testing.T) {
		handler := newTestHandler(t)

		body := `{"user_id":"u1","message":"recommend something with rum and mint"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandleChat(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), `"message"`)
		require.Contains(t, rec.Body.String(), "Mojito")
	})

	t.Run("should reject missing user_id", func(t *testing.T) {
		handler := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"message":"hi"}`))
		rec := httptest.NewRecorder()

		handler.HandleChat(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "user_id is required")
	})

	t.Run("should reject invalid body", func(t *testing.T) {
		handler := newTestHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		handler.HandleChat(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject empty message", func(t *testing.T) {
		handler := newTestHandler(t)

		body := `{"user_id":"u1","message":"   "}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandleChat(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "message cannot be empty")
	})

	t.Run("should reject non-POST methods", func(t *testing.T) {
		handler := newTestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/chat", nil)
		rec := httptest.NewRecorder()

		handler.HandleChat(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("should honor stored allergies", func(t *testing.T) {
		handler := newTestHandler(t)

		prefBody := `{"user_id":"u1","favorite_ingredients":[],"allergies":["triple sec"]}`
		prefReq := httptest.NewRequest(http.MethodPost, "/v1/preferences", strings.NewReader(prefBody))
		prefRec := httptest.NewRecorder()
		handler.HandlePreferences(prefRec, prefReq)
		require.Equal(t, http.StatusOK, prefRec.Code)

		body := `{"user_id":"u1","message":"recommend something with lime juice"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.HandleChat(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotContains(t, rec.Body.String(), "Margarita")
	})

	t.Run("should serve concurrent requests for one user", func(t *testing.T) {
		handler := newTestHandler(t)

		// Seed a session so every request starts from shared history.
		seed := httptest.NewRequest(http.MethodPost, "/v1/chat",
			strings.NewReader(`{"user_id":"u1","message":"recommend something minty"}`))
		seedRec := httptest.NewRecorder()
		handler.HandleChat(seedRec, seed)
		require.Equal(t, http.StatusOK, seedRec.Code)

		var wg sync.WaitGroup
		codes := make([]int, 8)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				body := `{"user_id":"u1","message":"recommend something with rum"}`
				req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
				rec := httptest.NewRecorder()
				handler.HandleChat(rec, req)
				codes[i] = rec.Code
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			require.Equal(t, http.StatusOK, code)
		}
	})
}

func TestHandler_HandlePreferences(t *testing.T) {
	t.Run("should store and return normalized preferences", func(t *testing.T) {
		handler := newTestHandler(t)

		body := `{"user_id":"u1","favorite_ingredients":[" Mint ","RUM"],"allergies":["Triple Sec"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/preferences", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandlePreferences(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"mint"`)
		require.Contains(t, rec.Body.String(), `"rum"`)
		require.Contains(t, rec.Body.String(), `"triple sec"`)

		getReq := httptest.NewRequest(http.MethodGet, "/v1/preferences?user_id=u1", nil)
		getRec := httptest.NewRecorder()
		handler.HandlePreferences(getRec, getReq)

		require.Equal(t, http.StatusOK, getRec.Code)
		require.Contains(t, getRec.Body.String(), `"mint"`)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		handler := newTestHandler(t)

		body := `{"user_id":"u1","favourite_stuff":["mint"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/preferences", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandlePreferences(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "unknown field")
	})

	t.Run("should reject read without user_id", func(t *testing.T) {
		handler := newTestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/preferences", nil)
		rec := httptest.NewRecorder()

		handler.HandlePreferences(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject unsupported methods", func(t *testing.T) {
		handler := newTestHandler(t)

		req := httptest.NewRequest(http.MethodDelete, "/v1/preferences", nil)
		rec := httptest.NewRecorder()

		handler.HandlePreferences(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandler_HandleHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HandleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
