package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/you/pr-relay/internal/repository"
	uc "github.com/you/pr-relay/internal/usecase"
)

const (
	msgOwnerRepoRequired   = "Owner and Repository are required!"
	msgNoOpenPRs           = "No open PRs found for this repository."
	msgFetchPRsFailed      = "Error fetching PRs"
	msgFetchCommentsFailed = "Error fetching comments"
)

type Handlers struct {
	UC  *uc.PRUsecase
	Log zerolog.Logger
}

func NewHandlers(uc *uc.PRUsecase, log zerolog.Logger) *Handlers {
	return &Handlers{UC: uc, Log: log}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func messageResp(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// fail reports a relay failure. Validation errors become 400; anything else
// is an upstream failure and becomes 500 with the underlying error text.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, uc.ErrOwnerRepoRequired) {
		messageResp(w, http.StatusBadRequest, msgOwnerRepoRequired)
		return
	}

	ev := hlog.FromRequest(r).Error().Err(err).
		Str("owner", r.URL.Query().Get("owner")).
		Str("repo", r.URL.Query().Get("repo"))
	var upErr *repository.UpstreamError
	if errors.As(err, &upErr) && upErr.Status != 0 {
		ev = ev.Int("upstream_status", upErr.Status)
	}
	ev.Msg(msg)

	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": msg, "error": err.Error()})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *Handlers) ListPulls(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prs, err := h.UC.ListPullRequests(r.Context(), q.Get("owner"), q.Get("repo"))
	if err != nil {
		h.fail(w, r, err, msgFetchPRsFailed)
		return
	}
	if len(prs) == 0 {
		messageResp(w, http.StatusOK, msgNoOpenPRs)
		return
	}
	writeJSON(w, http.StatusOK, prs)
}

// ListComments answers with the comment list as-is; unlike ListPulls an empty
// list is returned as [].
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prNumber := mux.Vars(r)["prNumber"]
	comments, err := h.UC.ListComments(r.Context(), q.Get("owner"), q.Get("repo"), prNumber)
	if err != nil {
		h.fail(w, r, err, msgFetchCommentsFailed)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
