package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const upstreamFailureMessage = "Could not get response from the Xuno support assistant. Please try again."

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// faqRequest is the body of POST /api/faq.
type faqRequest struct {
	Question string `json:"question"`
}

// RegisterRoutes mounts the chat and FAQ endpoints on the given router.
func RegisterRoutes(r chi.Router, composer *Composer) {
	r.Post("/api/chat", handleChat(composer))
	r.Post("/api/faq", handleFAQ(composer))
}

func handleChat(composer *Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, ErrorResponse("Invalid request body"))
			return
		}

		if req.Message == "" {
			writeResponse(w, http.StatusBadRequest, ErrorResponse("Message is required"))
			return
		}

		resp, sessionID, err := composer.Respond(r.Context(), req.Message, req.SessionID)
		if err != nil {
			// The cause stays server-side; the caller gets a generic retry message.
			log.Printf("chat: session %s: %v", sessionID, err)
			writeResponse(w, http.StatusInternalServerError, ErrorResponse(upstreamFailureMessage))
			return
		}

		writeResponse(w, http.StatusOK, resp)
	}
}

func handleFAQ(composer *Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req faqRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, ErrorResponse("Invalid request body"))
			return
		}

		if req.Question == "" {
			writeResponse(w, http.StatusBadRequest, ErrorResponse("Question is required"))
			return
		}

		// "No answer found" is a normal outcome the widget renders, so the
		// fallback ships with a 200 like any other answer.
		writeResponse(w, http.StatusOK, composer.AnswerQuestion(req.Question))
	}
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
