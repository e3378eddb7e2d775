package address

import (
	"net/http"

	"handy/infras/otel"
	"handy/internal/domains/address/model/dto"
	"handy/internal/domains/address/service"
	"handy/shared/constant"
	"handy/shared/validator"
	"handy/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Address
	otel    otel.Otel
}

func New(service service.Address, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/addresses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAddress)
		routerGroup.Get("/", handler.GetMyAddresses)
		routerGroup.Patch("/{id}", handler.UpdateAddress)
		routerGroup.Delete("/{id}", handler.DeleteAddress)
	})
}

// CreateAddress handles the creation of a new address.
// @Summary Create a new address
// @Description Create an address for the authenticated user, optionally geocoded.
// @Tags Address
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Create Address Request"
// @Success 201 {object} response.Data[dto.AddressResponse] "Address created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addresses [post]
// @Security BearerAuth
func (handler *Handler) CreateAddress(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAddress")
	defer scope.End()

	req := dto.CreateAddressRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	address, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create address")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Address created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, address)
}

// GetMyAddresses retrieves the authenticated user's addresses.
// @Summary Get my addresses
// @Description Retrieve all addresses belonging to the authenticated user.
// @Tags Address
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAddressesResponse] "List of addresses"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addresses [get]
// @Security BearerAuth
func (handler *Handler) GetMyAddresses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyAddresses")
	defer scope.End()

	addresses, err := handler.service.ListMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addresses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Addresses retrieved successfully")

	response.WithJSON(w, http.StatusOK, addresses)
}

// UpdateAddress updates an existing address by its ID.
// @Summary Update an address by ID
// @Description Update the details of an address owned by the authenticated user.
// @Tags Address
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body dto.UpdateAddressRequest true "Update Address Request"
// @Success 200 {object} response.Message "Address updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addresses/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAddress")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAddressRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update address")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Address updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Address updated successfully")
}

// DeleteAddress deletes an address by its ID.
// @Summary Delete an address by ID
// @Description Delete an address owned by the authenticated user.
// @Tags Address
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} response.Message "Address deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/addresses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAddress")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete address")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Address deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Address deleted successfully")
}
