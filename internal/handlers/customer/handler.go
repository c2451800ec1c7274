package customer

import (
	"net/http"

	"lotus/infras/otel"
	"lotus/internal/domains/customer/model"
	"lotus/internal/domains/customer/model/dto"
	"lotus/internal/domains/customer/service"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/validator"
	"lotus/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Put("/", handler.UpsertCustomer)
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/{phone}", handler.GetCustomerByPhone)
		routerGroup.Post("/merge", handler.MergeCustomers)
		routerGroup.Post("/{phone}/change-phone", handler.ChangeContactKey)
	})
}

// UpsertCustomer creates or refreshes a customer identity record.
// @Summary Upsert a customer
// @Description Create the customer on first contact or overwrite identity fields on repeat contact. Visit counters are never touched.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.UpsertCustomerRequest true "Customer payload"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer upserted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [put]
// @Security BearerAuth
func (handler *Handler) UpsertCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertCustomer")
	defer scope.End()

	var req dto.UpsertCustomerRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upsert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer upserted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetCustomers retrieves customers.
// @Summary Get all customers
// @Description Retrieve customers with optional filtering and pagination.
// @Tags Customer
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} response.Data[dto.GetCustomersResponse] "List of customers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers [get]
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldPhone),
				Table:    model.TableName,
			},
		},
	}

	customers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}

// GetCustomerByPhone retrieves a customer by contact key.
// @Summary Get a customer by phone
// @Description Retrieve a customer by their normalized phone number.
// @Tags Customer
// @Accept json
// @Produce json
// @Param phone path string true "Customer phone"
// @Success 200 {object} response.Data[dto.CustomerResponse] "Customer details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{phone} [get]
func (handler *Handler) GetCustomerByPhone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByPhone")
	defer scope.End()

	phoneParam := chi.URLParam(r, constant.RequestParamPhone)

	customer, err := handler.service.FindByPhone(ctx, phoneParam)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by phone")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer retrieved successfully")

	response.WithJSON(w, http.StatusOK, customer)
}

// MergeCustomers merges one customer identity into another.
// @Summary Merge two customers
// @Description Reassign every booking of the source phone to the target customer, then delete the source record. All or nothing.
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.MergeCustomerRequest true "Merge payload"
// @Success 200 {object} response.Message "Customers merged successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/merge [post]
// @Security BearerAuth
func (handler *Handler) MergeCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MergeCustomers")
	defer scope.End()

	var req dto.MergeCustomerRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Merge(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to merge customers")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	scope.AddEvent("Customers merged successfully by staff " + staff)

	response.WithMessage(w, http.StatusOK, "Customers merged successfully")
}

// ChangeContactKey re-points a customer to a new phone number.
// @Summary Change a customer's phone
// @Description Move the customer identity and booking history to a new phone. Degenerates into a merge when the target already exists.
// @Tags Customer
// @Accept json
// @Produce json
// @Param phone path string true "Current customer phone"
// @Param request body dto.ChangeContactKeyRequest true "New phone payload"
// @Success 200 {object} response.Message "Customer phone changed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/customers/{phone}/change-phone [post]
// @Security BearerAuth
func (handler *Handler) ChangeContactKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeContactKey")
	defer scope.End()

	phoneParam := chi.URLParam(r, constant.RequestParamPhone)

	var req dto.ChangeContactKeyRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangeContactKey(ctx, phoneParam, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change customer phone")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer phone changed successfully")

	response.WithMessage(w, http.StatusOK, "Customer phone changed successfully")
}
