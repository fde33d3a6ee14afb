package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

// Dates travel as YYYY-MM-DD. Timestamps use RFC 3339.

// FollowUpResponse is the wire form of a follow-up.
type FollowUpResponse struct {
	ID               string    `json:"id"`
	ClientName       string    `json:"clientName"`
	Company          string    `json:"company"`
	Mobile           string    `json:"mobile"`
	Email            string    `json:"email"`
	ClientType       string    `json:"clientType"`
	Frequency        string    `json:"frequency"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	LastContactDate  *string   `json:"lastContactDate"`
	NextFollowUpDate string    `json:"nextFollowUpDate"`
	Notes            string    `json:"notes"`
	AvatarURL        *string   `json:"avatarUrl"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toFollowUpResponse(f domain.FollowUp) FollowUpResponse {
	return FollowUpResponse{
		ID:               f.ID.String(),
		ClientName:       f.ClientName,
		Company:          f.Company,
		Mobile:           f.Mobile,
		Email:            f.Email,
		ClientType:       f.ClientType.String(),
		Frequency:        f.Frequency.String(),
		Priority:         f.Priority.String(),
		Status:           f.Status.String(),
		LastContactDate:  formatDatePtr(f.LastContactDate),
		NextFollowUpDate: domain.FormatDate(f.NextFollowUpDate),
		Notes:            f.Notes,
		AvatarURL:        f.AvatarURL,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

func toFollowUpList(items []domain.FollowUp) []FollowUpResponse {
	out := make([]FollowUpResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFollowUpResponse(f))
	}
	return out
}

// SuggestionResponse is what the outcome dialog pre-fills.
type SuggestionResponse struct {
	Outcome          string  `json:"outcome"`
	NextFollowUpDate *string `json:"nextFollowUpDate"`
	Notes            string  `json:"notes"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     string    `json:"dueDate"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		DueDate:     domain.FormatDate(t.DueDate),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// OrgMemberResponse is the wire form of an org member. Children is only
// populated in the tree view.
type OrgMemberResponse struct {
	ID        string              `json:"id"`
	ParentID  *string             `json:"parentId"`
	Name      string              `json:"name"`
	Role      string              `json:"role"`
	Level     string              `json:"level"`
	AvatarURL *string             `json:"avatarUrl"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Children  []OrgMemberResponse `json:"children,omitempty"`
}

func toOrgMemberResponse(m domain.OrgMember) OrgMemberResponse {
	resp := OrgMemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Role:      m.Role,
		Level:     m.Level.String(),
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ParentID != nil {
		s := m.ParentID.String()
		resp.ParentID = &s
	}
	return resp
}

func toOrgTree(nodes []*domain.OrgNode) []OrgMemberResponse {
	out := make([]OrgMemberResponse, 0, len(nodes))
	for _, n := range nodes {
		resp := toOrgMemberResponse(n.OrgMember)
		if len(n.Children) > 0 {
			resp.Children = toOrgTree(n.Children)
		}
		out = append(out, resp)
	}
	return out
}

// UserResponse is the wire form of a profile. The password hash never
// leaves the service.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	Role               string     `json:"role"`
	Team               string     `json:"team"`
	Phone              string     `json:"phone"`
	AgendaReminderTime string     `json:"agendaReminderTime"`
	AvatarURL          *string    `json:"avatarUrl"`
	Bio                string     `json:"bio"`
	Status             string     `json:"status"`
	LastLoginAt        *time.Time `json:"lastLoginAt"`
	JoinedAt           time.Time  `json:"joinedAt"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:                 u.ID.String(),
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		Team:               u.Team,
		Phone:              u.Phone,
		AgendaReminderTime: u.AgendaReminderTime,
		AvatarURL:          u.AvatarURL,
		Bio:                u.Bio,
		Status:             u.Status.String(),
		LastLoginAt:        u.LastLoginAt,
		JoinedAt:           u.JoinedAt,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(*t)
	return &s
}

// dateField parses an optional date and records a field error on failure.
func dateField(raw *string, field string, errs *[]domain.FieldError) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := domain.ParseDate(*raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
		return nil
	}
	return &t
}

// parseNullableID decodes a UUID field that distinguishes absent (nil raw)
// from an explicit JSON null.
func parseNullableID(raw json.RawMessage, field string, errs *[]domain.FieldError) (id *uuid.UUID, isNull bool) {
	if raw == nil {
		return nil, false
	}
	if string(raw) == "null" {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be a UUID"})
		return nil, false
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be a UUID"})
		return nil, false
	}
	return &parsed, false
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
