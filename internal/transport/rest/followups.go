package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/internal/service/followup"
	"github.com/heartmarshall/biztrack-backend/internal/service/schedule"
)

type followUpService interface {
	List(ctx context.Context) ([]domain.FollowUp, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.FollowUp, error)
	Create(ctx context.Context, in followup.CreateInput) (*domain.FollowUp, error)
	Update(ctx context.Context, in followup.UpdateInput) (*domain.FollowUp, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.FollowUp, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CompleteCycle(ctx context.Context, in followup.CompleteCycleInput) (*domain.FollowUp, error)
	Suggest(ctx context.Context, in followup.CompleteCycleInput) (*followup.Suggestion, error)
}

type agendaService interface {
	Due(ctx context.Context, asOf time.Time) ([]domain.FollowUp, error)
	ForDay(ctx context.Context, day time.Time) ([]domain.FollowUp, error)
}

// FollowUpHandler serves /api/followups.
type FollowUpHandler struct {
	svc    followUpService
	agenda agendaService
	log    *slog.Logger
	now    func() time.Time
}

// NewFollowUpHandler creates a FollowUpHandler. Query dates default to
// today in loc.
func NewFollowUpHandler(logger *slog.Logger, svc followUpService, agenda agendaService, loc *time.Location) *FollowUpHandler {
	if loc == nil {
		loc = time.Local
	}
	return &FollowUpHandler{
		svc:    svc,
		agenda: agenda,
		log:    logger.With("handler", "followups"),
		now:    func() time.Time { return time.Now().In(loc) },
	}
}

type createFollowUpRequest struct {
	ClientName       string  `json:"clientName"`
	Company          string  `json:"company"`
	Mobile           string  `json:"mobile"`
	Email            string  `json:"email"`
	ClientType       string  `json:"clientType"`
	Frequency        string  `json:"frequency"`
	Priority         string  `json:"priority"`
	Status           string  `json:"status"`
	NextFollowUpDate *string `json:"nextFollowUpDate"`
	Notes            string  `json:"notes"`
	AvatarURL        *string `json:"avatarUrl"`
}

type updateFollowUpRequest struct {
	ClientName       *string `json:"clientName"`
	Company          *string `json:"company"`
	Mobile           *string `json:"mobile"`
	Email            *string `json:"email"`
	ClientType       *string `json:"clientType"`
	Frequency        *string `json:"frequency"`
	Priority         *string `json:"priority"`
	Status           *string `json:"status"`
	LastContactDate  *string `json:"lastContactDate"`
	NextFollowUpDate *string `json:"nextFollowUpDate"`
	Notes            *string `json:"notes"`
	AvatarURL        *string `json:"avatarUrl"`
}

type completeCycleRequest struct {
	Outcome          string  `json:"outcome"`
	NextFollowUpDate *string `json:"nextFollowUpDate"`
	Notes            *string `json:"notes"`
}

// List handles GET /api/followups.
func (h *FollowUpHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpList(items))
}

// Get handles GET /api/followups/{id}.
func (h *FollowUpHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpResponse(*f))
}

// Create handles POST /api/followups.
func (h *FollowUpHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFollowUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var errs []domain.FieldError
	in := followup.CreateInput{
		ClientName: req.ClientName,
		Company:    req.Company,
		Mobile:     req.Mobile,
		Email:      req.Email,
		ClientType: domain.ClientType(req.ClientType),
		Frequency:  domain.Frequency(req.Frequency),
		Priority:   domain.Priority(req.Priority),
		Status:     domain.Status(req.Status),
		Notes:      req.Notes,
		AvatarURL:  req.AvatarURL,
	}
	if next := dateField(req.NextFollowUpDate, "nextFollowUpDate", &errs); next != nil {
		in.NextFollowUpDate = *next
	}
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	f, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFollowUpResponse(*f))
}

// Update handles PATCH /api/followups/{id}.
func (h *FollowUpHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateFollowUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var errs []domain.FieldError
	params := domain.FollowUpUpdateParams{
		ClientName:       req.ClientName,
		Company:          req.Company,
		Mobile:           req.Mobile,
		Email:            req.Email,
		ClientType:       enumPtr[domain.ClientType](req.ClientType),
		Frequency:        enumPtr[domain.Frequency](req.Frequency),
		Priority:         enumPtr[domain.Priority](req.Priority),
		Status:           enumPtr[domain.Status](req.Status),
		LastContactDate:  dateField(req.LastContactDate, "lastContactDate", &errs),
		NextFollowUpDate: dateField(req.NextFollowUpDate, "nextFollowUpDate", &errs),
		Notes:            req.Notes,
		AvatarURL:        req.AvatarURL,
	}
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	f, err := h.svc.Update(r.Context(), followup.UpdateInput{ID: id, Params: params})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpResponse(*f))
}

// Archive handles POST /api/followups/{id}/archive.
func (h *FollowUpHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	f, err := h.svc.Archive(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpResponse(*f))
}

// Delete handles DELETE /api/followups/{id}.
func (h *FollowUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Complete handles POST /api/followups/{id}/complete.
func (h *FollowUpHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req completeCycleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var errs []domain.FieldError
	next := dateField(req.NextFollowUpDate, "nextFollowUpDate", &errs)
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	f, err := h.svc.CompleteCycle(r.Context(), followup.CompleteCycleInput{
		ID:               id,
		Outcome:          domain.Outcome(req.Outcome),
		NextFollowUpDate: next,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpResponse(*f))
}

// Suggest handles GET /api/followups/{id}/suggest?outcome=X. Nothing is
// persisted.
func (h *FollowUpHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	s, err := h.svc.Suggest(r.Context(), followup.CompleteCycleInput{
		ID:      id,
		Outcome: domain.Outcome(r.URL.Query().Get("outcome")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, SuggestionResponse{
		Outcome:          s.Outcome.String(),
		NextFollowUpDate: formatDatePtr(s.NextFollowUpDate),
		Notes:            s.Notes,
	})
}

// Due handles GET /api/followups/due?asOf=YYYY-MM-DD.
func (h *FollowUpHandler) Due(w http.ResponseWriter, r *http.Request) {
	asOf, err := schedule.ParseDay(r.URL.Query().Get("asOf"), h.now())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items, err := h.agenda.Due(r.Context(), asOf)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpList(items))
}

// Agenda handles GET /api/followups/agenda?date=YYYY-MM-DD.
func (h *FollowUpHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	day, err := schedule.ParseDay(r.URL.Query().Get("date"), h.now())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items, err := h.agenda.ForDay(r.Context(), day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFollowUpList(items))
}
