package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"noah/internal/auth"
	"noah/internal/community"
)

type CommunityHandler struct {
	Svc *community.Service
}

type createGroupReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Privacy     string   `json:"privacy"`
	Rules       []string `json:"rules"`
	Tags        []string `json:"tags"`
}

func (h *CommunityHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createGroupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.Svc.CreateGroup(r.Context(), uid, community.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Privacy:     community.GroupPrivacy(req.Privacy),
		Rules:       req.Rules,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, community.ErrInvalidInput) {
			http.Error(w, "group name required", http.StatusBadRequest)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, g)
}

func (h *CommunityHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListGroups(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type createPostReq struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"is_anonymous"`
}

func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	groupID := chi.URLParam(r, "id")

	var req createPostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	p, err := h.Svc.CreatePost(r.Context(), uid, groupID, community.CreatePostInput{
		Type:        community.PostType(req.Type),
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		switch {
		case errors.Is(err, community.ErrNotFound):
			http.Error(w, "group not found", http.StatusNotFound)
		case errors.Is(err, community.ErrInvalidInput):
			http.Error(w, "title, content and a valid type required", http.StatusBadRequest)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	rows, err := h.Svc.ListPosts(r.Context(), groupID, 0)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *CommunityHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := h.Svc.LikePost(r.Context(), postID); err != nil {
		if errors.Is(err, community.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createCommentReq struct {
	Content         string  `json:"content"`
	ParentCommentID *string `json:"parent_comment_id"`
	IsAnonymous     bool    `json:"is_anonymous"`
}

func (h *CommunityHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	postID := chi.URLParam(r, "id")

	var req createCommentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	c, err := h.Svc.CreateComment(r.Context(), uid, postID, community.CreateCommentInput{
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
		IsAnonymous:     req.IsAnonymous,
	})
	if err != nil {
		switch {
		case errors.Is(err, community.ErrNotFound):
			http.Error(w, "post not found", http.StatusNotFound)
		case errors.Is(err, community.ErrInvalidInput):
			http.Error(w, "content required", http.StatusBadRequest)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *CommunityHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	rows, err := h.Svc.ListComments(r.Context(), postID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type reportReq struct {
	TargetKind string `json:"target_kind"`
	TargetID   string `json:"target_id"`
	Reason     string `json:"reason"`
}

func (h *CommunityHandler) Report(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req reportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	rep, err := h.Svc.Report(r.Context(), uid, community.TargetKind(req.TargetKind), req.TargetID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, community.ErrNotFound):
			http.Error(w, "target not found", http.StatusNotFound)
		case errors.Is(err, community.ErrInvalidInput):
			http.Error(w, "reason and a valid target required", http.StatusBadRequest)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, rep)
}

// OpenReports is admin-only (enforced by the router).
func (h *CommunityHandler) OpenReports(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.OpenReports(r.Context(), 0)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type resolveReportReq struct {
	Status string `json:"status"` // resolved | dismissed
}

// ResolveReport is admin-only (enforced by the router).
func (h *CommunityHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	reportID := chi.URLParam(r, "id")

	var req resolveReportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	err := h.Svc.ResolveReport(r.Context(), uid, reportID, community.ReportStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, community.ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, community.ErrInvalidInput):
			http.Error(w, "status must be resolved or dismissed", http.StatusBadRequest)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
