package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	contactapp "github.com/okozak/contacts-api/application/contact"
	userapp "github.com/okozak/contacts-api/application/user"
	"github.com/okozak/contacts-api/cmd/config"
	"github.com/okozak/contacts-api/constant"
	"github.com/okozak/contacts-api/model"
	utilsContext "github.com/okozak/contacts-api/utils/context"
	"github.com/okozak/contacts-api/utils/errors"
	validatorx "github.com/okozak/contacts-api/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultLimit = 100

type RestHandler struct {
	cfg        *config.Config
	UserApp    userapp.UserApp
	ContactApp contactapp.ContactApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, ContactApp contactapp.ContactApp, limiter *RateLimiter) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		cfg:        cfg,
		UserApp:    UserApp,
		ContactApp: ContactApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes. The literal subpaths must come before the {id}
	// pattern so "search" is not parsed as a contact id.
	mux.HandleFunc("/contacts/search", rh.SearchContacts).Methods(http.MethodGet)
	mux.HandleFunc("/contacts/birthdays", rh.UpcomingBirthdays).Methods(http.MethodGet)
	mux.HandleFunc("/contacts", limiter.Wrap(rh.ListContacts)).Methods(http.MethodGet)
	mux.HandleFunc("/contacts", rh.CreateContact).Methods(http.MethodPost)
	mux.HandleFunc("/contacts/{id:[0-9]+}", rh.GetContact).Methods(http.MethodGet)
	mux.HandleFunc("/contacts/{id:[0-9]+}", rh.UpdateContact).Methods(http.MethodPut)
	mux.HandleFunc("/contacts/{id:[0-9]+}", rh.DeleteContact).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	// CORS wraps the router itself: router middlewares only run on matched
	// routes, and no route matches OPTIONS, so preflight requests must be
	// answered before routing.
	return CORSMiddleware(cfg.Server.AllowOrigin)(mux)
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListContacts handler
// @Summary List contacts
// @Description List the authenticated user's contacts with pagination
// @Tags Contacts
// @Produce json
// @Param skip query int false "Number of contacts to skip"
// @Param limit query int false "Maximum number of contacts to return"
// @Success 200 {object} transport.Response
// @Security BearerAuth
// @Router /contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	skip, limit, err := parseSkipAndLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.ListContacts(ctx, userID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetContact handler
// @Summary Get contact
// @Description Get one of the authenticated user's contacts by id
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.GetContact(ctx, userID, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateContact handler
// @Summary Create contact
// @Description Create a contact owned by the authenticated user
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Security BearerAuth
// @Router /contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.CreateContact(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateContact handler
// @Summary Update contact
// @Description Replace all fields of one of the authenticated user's contacts
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body model.ContactRequest true "Contact"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.UpdateContact(ctx, userID, contactID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteContact handler
// @Summary Delete contact
// @Description Delete one of the authenticated user's contacts
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	contactID, err := parseContactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.DeleteContact(ctx, userID, contactID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchContacts handler
// @Summary Search contacts
// @Description Search the authenticated user's contacts by name or email substring
// @Tags Contacts
// @Produce json
// @Param firstname query string false "First name contains"
// @Param lastname query string false "Last name contains"
// @Param email query string false "Email contains"
// @Param skip query int false "Number of contacts to skip"
// @Param limit query int false "Maximum number of contacts to return"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Security BearerAuth
// @Router /contacts/search [get]
func (s *RestHandler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	skip, limit, err := parseSkipAndLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	filter := &model.ContactFilter{
		Firstname: r.URL.Query().Get("firstname"),
		Lastname:  r.URL.Query().Get("lastname"),
		Email:     r.URL.Query().Get("email"),
	}

	res, err := s.ContactApp.SearchContacts(ctx, userID, skip, limit, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpcomingBirthdays handler
// @Summary Upcoming birthdays
// @Description List contacts whose birthday falls within the next seven days
// @Tags Contacts
// @Produce json
// @Param skip query int false "Number of contacts to skip"
// @Param limit query int false "Maximum number of contacts to return"
// @Success 200 {object} transport.Response
// @Security BearerAuth
// @Router /contacts/birthdays [get]
func (s *RestHandler) UpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	skip, limit, err := parseSkipAndLimit(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.UpcomingBirthdays(ctx, userID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// parseSkipAndLimit reads the pagination query parameters, falling back to
// skip 0 and limit 100. Negative or malformed values are rejected.
func parseSkipAndLimit(r *http.Request) (int, int, error) {
	skip := 0
	limit := defaultLimit

	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		skip = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		limit = n
	}
	return skip, limit, nil
}

func parseContactID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	return id, nil
}
