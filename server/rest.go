package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/newsdraft/newsdraft/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// createArticleHandler runs the article pipeline for the submitted feed URL
// and archives the result. A run where the curator selects nothing is not an
// error, it returns an empty-result marker instead of an article.
func (s *Server) createArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		FeedURL string `json:"feed_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if !validFeedURL(req.FeedURL) {
		renderError(w, r, fmt.Errorf("invalid feed URL"), http.StatusBadRequest)
		return
	}

	result, err := s.articles.Run(ctx, req.FeedURL)
	if err != nil {
		lgr.Printf("[ERROR] article generation failed for %s: %v", req.FeedURL, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if result.Article == nil {
		reason := "curator selected nothing"
		if result.Entries == 0 {
			reason = "feed has no entries"
		}
		renderJSON(w, r, http.StatusOK, map[string]string{"result": "empty", "reason": reason})
		return
	}

	id, err := s.archive.SaveArticle(ctx, req.FeedURL, result.Article)
	if err != nil {
		lgr.Printf("[ERROR] failed to archive article: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	rec, err := s.archive.GetArticle(ctx, id)
	if err != nil {
		lgr.Printf("[ERROR] failed to load archived article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, rec)
}

// listArticlesHandler returns archived articles, newest first
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	recs, err := s.archive.ListArticles(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, recs)
}

// getArticleHandler returns a single archived article
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article ID"), http.StatusBadRequest)
		return
	}

	rec, err := s.archive.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("article %d not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get article %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, rec)
}

// createScriptHandler runs the video script pipeline for the submitted
// keyword and archives the result
func (s *Server) createScriptHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Keyword  string `json:"keyword"`
		Audience string `json:"audience"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.Keyword == "" {
		renderError(w, r, fmt.Errorf("keyword is required"), http.StatusBadRequest)
		return
	}

	audience := domain.Audience(req.Audience)
	if req.Audience == "" {
		audience = domain.AudienceBeginner
	}
	if !audience.Valid() {
		renderError(w, r, fmt.Errorf("invalid audience %q", req.Audience), http.StatusBadRequest)
		return
	}

	result, err := s.scripts.Run(ctx, req.Keyword, audience)
	if err != nil {
		lgr.Printf("[ERROR] script generation failed for %q: %v", req.Keyword, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	id, err := s.archive.SaveScript(ctx, result)
	if err != nil {
		lgr.Printf("[ERROR] failed to archive script: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	rec, err := s.archive.GetScript(ctx, id)
	if err != nil {
		lgr.Printf("[ERROR] failed to load archived script %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, rec)
}

// listScriptsHandler returns archived scripts, newest first
func (s *Server) listScriptsHandler(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	recs, err := s.archive.ListScripts(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list scripts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, recs)
}

// getScriptHandler returns a single archived script
func (s *Server) getScriptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid script ID"), http.StatusBadRequest)
		return
	}

	rec, err := s.archive.GetScript(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("script %d not found", id), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to get script %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, rec)
}

// validFeedURL accepts absolute http(s) URLs only
func validFeedURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// parseLimit reads the optional limit query parameter, zero means store default
func parseLimit(r *http.Request) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
