package personnelhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"plannersystem/internal/domain/auth"
	"plannersystem/internal/domain/personnel"
	"plannersystem/internal/transport/http/api"
	"plannersystem/internal/transport/http/middleware"
	"plannersystem/internal/transport/http/shared"
)

type Handler struct {
	Personnel *personnel.Service
	Perms     middleware.PermissionStore
}

func NewHandler(service *personnel.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Personnel: service, Perms: perms}
}

type personPayload struct {
	TeamID               string   `json:"teamId"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Type                 string   `json:"type"`
	MonthlySalary        float64  `json:"monthlySalary"`
	EventCache           float64  `json:"eventCache"`
	OvertimeRate         float64  `json:"overtimeRate"`
	OvertimeThreshold    *float64 `json:"overtimeThresholdHours"`
	ConvertOvertimeDaily *bool    `json:"convertOvertimeToDaily"`
}

type overtimeConfigPayload struct {
	OvertimeThreshold    *float64 `json:"overtimeThresholdHours"`
	ConvertOvertimeDaily *bool    `json:"convertOvertimeToDaily"`
	OvertimeRate         float64  `json:"overtimeRate"`
}

type teamPayload struct {
	Name                     string   `json:"name"`
	DefaultOvertimeThreshold *float64 `json:"defaultOvertimeThresholdHours"`
	DefaultConvertToDaily    *bool    `json:"defaultConvertOvertimeToDaily"`
}

type teamDefaultsPayload struct {
	DefaultOvertimeThreshold *float64 `json:"defaultOvertimeThresholdHours"`
	DefaultConvertToDaily    *bool    `json:"defaultConvertOvertimeToDaily"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/personnel", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPersonnelRead, h.Perms)).Get("/", h.handleListPeople)
		r.With(middleware.RequirePermission(auth.PermPersonnelWrite, h.Perms)).Post("/", h.handleCreatePerson)
		r.With(middleware.RequirePermission(auth.PermPersonnelRead, h.Perms)).Get("/{personID}", h.handleGetPerson)
		r.With(middleware.RequirePermission(auth.PermPersonnelWrite, h.Perms)).Put("/{personID}/overtime-config", h.handleUpdateOvertimeConfig)
	})
	r.Route("/teams", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPersonnelRead, h.Perms)).Get("/", h.handleListTeams)
		r.With(middleware.RequirePermission(auth.PermPersonnelWrite, h.Perms)).Post("/", h.handleCreateTeam)
		r.With(middleware.RequirePermission(auth.PermPersonnelRead, h.Perms)).Get("/{teamID}", h.handleGetTeam)
		r.With(middleware.RequirePermission(auth.PermPersonnelWrite, h.Perms)).Put("/{teamID}/overtime-defaults", h.handleUpdateTeamDefaults)
	})
}

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 50, 200)
	list, err := h.Personnel.ListPeople(r.Context(), user.TenantID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "personnel_list_failed", "failed to list personnel", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload personPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("type", payload.Type, "type is required")
	v.Enum("type", payload.Type, []string{personnel.TypeFixed, personnel.TypeFreelancer}, "must be fixed or freelancer")
	v.NonNegative("monthlySalary", payload.MonthlySalary)
	v.NonNegative("eventCache", payload.EventCache)
	v.NonNegative("overtimeRate", payload.OvertimeRate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Personnel.CreatePerson(r.Context(), user.TenantID, personnel.Person{
		TeamID:               strings.TrimSpace(payload.TeamID),
		Name:                 strings.TrimSpace(payload.Name),
		Email:                strings.ToLower(strings.TrimSpace(payload.Email)),
		Type:                 strings.ToLower(strings.TrimSpace(payload.Type)),
		MonthlySalary:        payload.MonthlySalary,
		EventCache:           payload.EventCache,
		OvertimeRate:         payload.OvertimeRate,
		OvertimeThreshold:    payload.OvertimeThreshold,
		ConvertOvertimeDaily: payload.ConvertOvertimeDaily,
		Active:               true,
	})
	if err != nil {
		if errors.Is(err, personnel.ErrInvalidPersonType) {
			api.Fail(w, http.StatusBadRequest, "invalid_person_type", "type must be fixed or freelancer", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "person_create_failed", "failed to create person", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	person, err := h.Personnel.GetPerson(r.Context(), user.TenantID, chi.URLParam(r, "personID"))
	if err != nil {
		if errors.Is(err, personnel.ErrPersonNotFound) {
			api.Fail(w, http.StatusNotFound, "person_not_found", "person not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "person_get_failed", "failed to load person", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, person, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateOvertimeConfig(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload overtimeConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	if payload.OvertimeThreshold != nil {
		v.NonNegative("overtimeThresholdHours", *payload.OvertimeThreshold)
	}
	v.NonNegative("overtimeRate", payload.OvertimeRate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Personnel.UpdateOvertimeConfig(r.Context(), user.TenantID, chi.URLParam(r, "personID"), payload.OvertimeThreshold, payload.ConvertOvertimeDaily, payload.OvertimeRate)
	if err != nil {
		if errors.Is(err, personnel.ErrPersonNotFound) {
			api.Fail(w, http.StatusNotFound, "person_not_found", "person not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "person_update_failed", "failed to update overtime configuration", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTeams(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	list, err := h.Personnel.ListTeams(r.Context(), user.TenantID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "teams_list_failed", "failed to list teams", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload teamPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if payload.DefaultOvertimeThreshold != nil {
		v.NonNegative("defaultOvertimeThresholdHours", *payload.DefaultOvertimeThreshold)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Personnel.CreateTeam(r.Context(), user.TenantID, personnel.Team{
		Name:                     strings.TrimSpace(payload.Name),
		DefaultOvertimeThreshold: payload.DefaultOvertimeThreshold,
		DefaultConvertToDaily:    payload.DefaultConvertToDaily,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "team_create_failed", "failed to create team", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	team, err := h.Personnel.GetTeam(r.Context(), user.TenantID, chi.URLParam(r, "teamID"))
	if err != nil {
		if errors.Is(err, personnel.ErrTeamNotFound) {
			api.Fail(w, http.StatusNotFound, "team_not_found", "team not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "team_get_failed", "failed to load team", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, team, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateTeamDefaults(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload teamDefaultsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	if payload.DefaultOvertimeThreshold != nil {
		v.NonNegative("defaultOvertimeThresholdHours", *payload.DefaultOvertimeThreshold)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Personnel.UpdateTeamDefaults(r.Context(), user.TenantID, chi.URLParam(r, "teamID"), payload.DefaultOvertimeThreshold, payload.DefaultConvertToDaily)
	if err != nil {
		if errors.Is(err, personnel.ErrTeamNotFound) {
			api.Fail(w, http.StatusNotFound, "team_not_found", "team not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "team_update_failed", "failed to update team defaults", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}
