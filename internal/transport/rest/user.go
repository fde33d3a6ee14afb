package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in user.UpdateProfileInput) (*domain.User, error)
}

// UserHandler serves /api/user for the authenticated user.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(logger *slog.Logger, svc userService) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name               *string `json:"name"`
	Role               *string `json:"role"`
	Team               *string `json:"team"`
	Phone              *string `json:"phone"`
	AgendaReminderTime *string `json:"agendaReminderTime"`
	AvatarURL          *string `json:"avatarUrl"`
	Bio                *string `json:"bio"`
	Status             *string `json:"status"`
}

// Get handles GET /api/user.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// Update handles PATCH /api/user.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:               req.Name,
		Role:               req.Role,
		Team:               req.Team,
		Phone:              req.Phone,
		AgendaReminderTime: req.AgendaReminderTime,
		AvatarURL:          req.AvatarURL,
		Bio:                req.Bio,
		Status:             enumPtr[domain.UserStatus](req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}
