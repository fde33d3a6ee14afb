package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/internal/service/org"
)

type orgService interface {
	List(ctx context.Context) ([]domain.OrgMember, error)
	Tree(ctx context.Context) ([]*domain.OrgNode, error)
	Create(ctx context.Context, in org.CreateInput) (*domain.OrgMember, error)
	Update(ctx context.Context, id uuid.UUID, p domain.OrgMemberUpdateParams) (*domain.OrgMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrgHandler serves /api/org.
type OrgHandler struct {
	svc orgService
	log *slog.Logger
}

// NewOrgHandler creates an OrgHandler.
func NewOrgHandler(logger *slog.Logger, svc orgService) *OrgHandler {
	return &OrgHandler{svc: svc, log: logger.With("handler", "org")}
}

type createOrgMemberRequest struct {
	ParentID  *string `json:"parentId"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Level     string  `json:"level"`
	AvatarURL *string `json:"avatarUrl"`
}

// parentId is raw so that an explicit null (detach to root) differs from
// an absent field.
type updateOrgMemberRequest struct {
	ParentID  json.RawMessage `json:"parentId"`
	Name      *string         `json:"name"`
	Role      *string         `json:"role"`
	Level     *string         `json:"level"`
	AvatarURL *string         `json:"avatarUrl"`
}

// List handles GET /api/org.
func (h *OrgHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]OrgMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toOrgMemberResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// Tree handles GET /api/org/tree.
func (h *OrgHandler) Tree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.svc.Tree(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrgTree(roots))
}

// Create handles POST /api/org.
func (h *OrgHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrgMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	in := org.CreateInput{
		Name:      req.Name,
		Role:      req.Role,
		Level:     domain.OrgLevel(req.Level),
		AvatarURL: req.AvatarURL,
	}
	if req.ParentID != nil && *req.ParentID != "" {
		parent, err := uuid.Parse(*req.ParentID)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("parentId", "must be a UUID"))
			return
		}
		in.ParentID = &parent
	}

	m, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrgMemberResponse(*m))
}

// Update handles PATCH /api/org/{id}.
func (h *OrgHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateOrgMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var errs []domain.FieldError
	parent, detach := parseNullableID(req.ParentID, "parentId", &errs)
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	m, err := h.svc.Update(r.Context(), id, domain.OrgMemberUpdateParams{
		ParentID:    parent,
		ClearParent: detach,
		Name:        req.Name,
		Role:        req.Role,
		Level:       enumPtr[domain.OrgLevel](req.Level),
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrgMemberResponse(*m))
}

// Delete handles DELETE /api/org/{id}. Descendants are removed with it.
func (h *OrgHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
