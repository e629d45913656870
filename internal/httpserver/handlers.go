package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"notice-cache/internal/cache"
	"notice-cache/internal/models"
)

// forceRefresh reads the ?refresh=true query parameter.
func forceRefresh(r *http.Request) bool {
	return r.URL.Query().Get("refresh") == "true"
}

// handleListNotices serves the notice list
func (s *Server) handleListNotices(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.List(r.Context(), forceRefresh(r))
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeData(s, w, result)
}

// handleNoticeDetail serves one notice's full body
func (s *Server) handleNoticeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeErrorResponse(w, "invalid notice id", http.StatusBadRequest)
		return
	}

	result, err := s.service.Detail(r.Context(), id, forceRefresh(r))
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeData(s, w, result)
}

// handleAttachments serves one notice's attachment metadata
func (s *Server) handleAttachments(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeErrorResponse(w, "invalid notice id", http.StatusBadRequest)
		return
	}

	result, err := s.service.Attachments(r.Context(), id, forceRefresh(r))
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeData(s, w, result)
}

// handleLeave serves one user's leave summary
func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	if user == "" {
		s.writeErrorResponse(w, "missing user", http.StatusBadRequest)
		return
	}

	result, err := s.service.Leave(r.Context(), user, forceRefresh(r))
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	writeData(s, w, result)
}

// handleClearCache clears one key or one namespace
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if (req.Namespace == "") == (req.Key == "") {
		s.writeErrorResponse(w, "exactly one of namespace or key must be set", http.StatusBadRequest)
		return
	}

	var err error
	if req.Namespace != "" {
		err = s.service.ClearNamespace(r.Context(), req.Namespace)
	} else {
		err = s.service.ClearKey(r.Context(), req.Key)
	}
	if err != nil {
		s.logger.Error("cache clear failed", zap.Error(err))
		s.writeErrorResponse(w, "cache clear failed", http.StatusInternalServerError)
		return
	}

	s.writeResponse(w, StatusResponse{Success: true})
}

// handleReset clears all cached noticeboard and leave data, for logout
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Reset(r.Context()); err != nil {
		s.logger.Error("cache reset failed", zap.Error(err))
		s.writeErrorResponse(w, "cache reset failed", http.StatusInternalServerError)
		return
	}
	s.writeResponse(w, StatusResponse{Success: true})
}

// writeLookupError maps a failed read-through lookup to an HTTP status.
// Reaching here means the upstream failed with no cached fallback.
func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	var fetchErr *models.RemoteFetchError
	if errors.As(err, &fetchErr) {
		s.logger.Warn("upstream fetch failed with no cached fallback", zap.Error(err))
		message := fetchErr.Message
		if message == "" {
			message = "upstream fetch failed"
		}
		s.writeErrorResponse(w, message, http.StatusBadGateway)
		return
	}

	s.logger.Error("lookup failed", zap.Error(err))
	s.writeErrorResponse(w, "internal error", http.StatusInternalServerError)
}

// writeData wraps a lookup result in the response envelope.
func writeData[T any](s *Server, w http.ResponseWriter, result cache.Result[T]) {
	s.writeResponse(w, DataResponse{
		Success: true,
		Data:    result.Value,
		Cache: CacheMeta{
			Outcome:   result.Outcome,
			FetchedAt: result.FetchedAt,
			Degraded:  result.Outcome.Degraded(),
		},
	})
}
