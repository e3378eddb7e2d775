package provider

import (
	"net/http"

	"handy/infras/otel"
	"handy/internal/domains/provider/model/dto"
	"handy/internal/domains/provider/service"
	"handy/shared/constant"
	"handy/shared/validator"
	"handy/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Provider
	otel    otel.Otel
}

func New(service service.Provider, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flat method routes so the catalog handler can attach
// the provider's service offerings under the same path prefix.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/providers/me", handler.GetProfile)
	router.Patch("/providers/me", handler.UpdateProfile)
	router.Get("/providers/me/schedule", handler.GetSchedule)
	router.Put("/providers/me/schedule", handler.UpdateSchedule)
}

// GetProfile retrieves the authenticated provider's profile.
// @Summary Get provider profile
// @Description Retrieve the provider profile of the authenticated user, including credits and verification status.
// @Tags Provider
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ProviderResponse] "Provider profile"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	profile, err := handler.service.GetProfile(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the authenticated provider's profile.
// @Summary Update provider profile
// @Description Update the provider's display name and bio.
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.UpdateProviderRequest true "Update Provider Request"
// @Success 200 {object} response.Message "Provider profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProviderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProfile(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update provider profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider profile updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Provider profile updated successfully")
}

// GetSchedule retrieves the provider's weekly working hours.
// @Summary Get provider schedule
// @Description Retrieve the provider's weekly schedule. Providers without a stored schedule get the default week.
// @Tags Provider
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Weekly schedule"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/me/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	schedule, err := handler.service.GetSchedule(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedule)
}

// UpdateSchedule replaces the provider's weekly working hours.
// @Summary Update provider schedule
// @Description Replace the provider's weekly schedule with the given entries.
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.UpdateScheduleRequest true "Update Schedule Request"
// @Success 200 {object} response.Message "Provider schedule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/me/schedule [put]
// @Security BearerAuth
func (handler *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchedule")
	defer scope.End()

	req := dto.UpdateScheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSchedule(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update provider schedule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider schedule updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Provider schedule updated successfully")
}
