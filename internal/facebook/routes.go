package facebook

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the Graph API pass-through endpoints under
// /api/facebook.
func RegisterRoutes(r chi.Router, client *Client) {
	r.Route("/api/facebook", func(r chi.Router) {
		r.Get("/test", handleTest(client))
		r.Post("/test-users", handleCreateTestUser(client))
		r.Get("/test-users", handleListTestUsers(client))
		r.Delete("/test-users/{userID}", handleDeleteTestUser(client))
		r.Get("/page/{pageID}", handlePageInfo(client))
		r.Get("/page/{pageID}/posts", handlePagePosts(client))
		r.Get("/page/{pageID}/insights", handlePageInsights(client))
	})
}

func handleTest(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := client.TestConnection(r.Context())
		if err != nil {
			writeError(w, "Failed to test Facebook connection", err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleCreateTestUser(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := client.CreateTestUser(r.Context(), true)
		if err != nil {
			writeError(w, "Failed to create test user", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Test user created successfully",
			"user":    user,
		})
	}
}

func handleListTestUsers(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := client.TestUsers(r.Context())
		if err != nil {
			writeError(w, "Failed to get test users", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Test users retrieved successfully",
			"users":   users,
		})
	}
}

func handleDeleteTestUser(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if err := client.DeleteTestUser(r.Context(), userID); err != nil {
			writeError(w, "Failed to delete test user", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Test user deleted successfully",
		})
	}
}

func handlePageInfo(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := client.PageInfo(r.Context(), chi.URLParam(r, "pageID"))
		if err != nil {
			writeError(w, "Failed to fetch page info", err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func handlePagePosts(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		posts, err := client.PagePosts(r.Context(), chi.URLParam(r, "pageID"), limit)
		if err != nil {
			writeError(w, "Failed to fetch page posts", err)
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

func handlePageInsights(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := r.URL.Query().Get("metrics")
		if metrics == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Metrics parameter is required",
			})
			return
		}

		insights, err := client.PageInsights(r.Context(), chi.URLParam(r, "pageID"), strings.Split(metrics, ","))
		if err != nil {
			writeError(w, "Failed to fetch page insights", err)
			return
		}
		writeJSON(w, http.StatusOK, insights)
	}
}

func writeError(w http.ResponseWriter, msg string, err error) {
	log.Printf("facebook: %s: %v", msg, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
