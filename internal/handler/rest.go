package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/employee-api/internal/middleware"
	"github.com/vyrodovalexey/employee-api/internal/model"
	"github.com/vyrodovalexey/employee-api/internal/store"
)

// errInvalidID is returned when the {id} path segment is not an integer.
var errInvalidID = errors.New("invalid employee ID")

// RESTHandler handles REST API requests for employees.
type RESTHandler struct {
	store    store.Store
	logger   *zap.Logger
	notifier Notifier
	strict   bool
}

// Option configures a RESTHandler.
type Option func(*RESTHandler)

// WithNotifier publishes change events to n after each successful mutation.
func WithNotifier(n Notifier) Option {
	return func(h *RESTHandler) {
		if n != nil {
			h.notifier = n
		}
	}
}

// WithStrictValidation makes create and update reject employees that fail model validation.
func WithStrictValidation(enabled bool) Option {
	return func(h *RESTHandler) {
		h.strict = enabled
	}
}

// NewRESTHandler creates a new RESTHandler instance.
func NewRESTHandler(s store.Store, logger *zap.Logger, opts ...Option) *RESTHandler {
	h := &RESTHandler{
		store:    s,
		logger:   logger,
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers the REST API routes with the router.
func (h *RESTHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", h.Home).Methods(http.MethodGet)
	api.HandleFunc("/employees", h.ListEmployees).Methods(http.MethodGet)
	api.HandleFunc("/employees", h.CreateEmployee).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id}", h.GetEmployee).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", h.UpdateEmployee).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}", h.DeleteEmployee).Methods(http.MethodDelete)
}

// HealthCheck handles GET /health requests.
func (h *RESTHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}

// Home handles GET /api/ requests.
func (h *RESTHandler) Home(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.NewAPIResponse(ServiceName, Version))
}

// ListEmployees handles GET /api/employees requests.
func (h *RESTHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.store.List(r.Context())
	if err != nil {
		h.handleStoreError(w, r, err, "list employees")
		return
	}

	h.writeJSON(w, http.StatusOK, employees)
}

// GetEmployee handles GET /api/employees/{id} requests.
func (h *RESTHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employee, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.handleStoreError(w, r, err, "get employee")
		return
	}

	h.writeJSON(w, http.StatusOK, employee)
}

// CreateEmployee handles POST /api/employees requests.
func (h *RESTHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	employee, err := h.store.Create(r.Context(), input)
	if err != nil {
		h.handleStoreError(w, r, err, "create employee")
		return
	}

	h.notifier.Publish(model.NewEmployeeEvent(model.EventCreated, employee.ID, employee))
	h.writeJSON(w, http.StatusOK, employee)
}

// UpdateEmployee handles PUT /api/employees/{id} requests.
func (h *RESTHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	employee, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		h.handleStoreError(w, r, err, "update employee")
		return
	}

	h.notifier.Publish(model.NewEmployeeEvent(model.EventUpdated, employee.ID, employee))
	h.writeJSON(w, http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/employees/{id} requests.
// The response is the same whether or not the employee existed; only an
// actual removal is published to the change feed.
func (h *RESTHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	existed := true
	if _, err := h.store.Get(r.Context(), id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.handleStoreError(w, r, err, "delete employee")
			return
		}
		existed = false
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.handleStoreError(w, r, err, "delete employee")
		return
	}

	if existed {
		h.notifier.Publish(model.NewEmployeeEvent(model.EventDeleted, id, nil))
	}
	h.writeJSON(w, http.StatusOK, model.NewMessageResponse("Employee deleted"))
}

// decodeEmployee reads the request body and, in strict mode, validates it.
// It writes the error response itself and reports whether the caller should continue.
func (h *RESTHandler) decodeEmployee(w http.ResponseWriter, r *http.Request) (*model.Employee, bool) {
	var input model.Employee
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request body",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	if h.strict {
		if err := input.Validate(); err != nil {
			h.logger.Warn("validation failed",
				zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
				zap.Error(err),
			)
			resp := model.ErrorResponse{Code: http.StatusBadRequest, Message: err.Error()}
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				resp.Details = verr.Details()
			}
			h.writeJSON(w, http.StatusBadRequest, resp)
			return nil, false
		}
	}

	return &input, true
}

// handleStoreError handles store errors and writes appropriate HTTP responses.
func (h *RESTHandler) handleStoreError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID := zap.String("request_id", middleware.RequestIDFromContext(r.Context()))

	switch {
	case errors.Is(err, store.ErrNotFound):
		h.logger.Debug("employee not found", zap.String("operation", operation), requestID)
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, store.ErrNilEmployee):
		h.writeError(w, http.StatusBadRequest, "employee is required")
	default:
		h.logger.Error("store operation failed",
			zap.String("operation", operation),
			requestID,
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *RESTHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error response with the given status code and message.
func (h *RESTHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
