package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/energichain/server/internal/common"
	"github.com/energichain/server/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// userProfile is the public shape of an account. The password hash never
// leaves the service boundary.
type userProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func profileOf(u *models.User) userProfile {
	return userProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s *HTTPServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)

	r.Get("/ping", s.handlePing)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
	})

	r.Route("/trade", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/create", s.handleCreateTrade)
		r.Get("/mine", s.handleMyTrades)
	})

	return r
}

func (s *HTTPServer) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.SignUp(ctx, payload.Name, payload.Email, payload.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"msg":  "User created successfully",
		"user": profileOf(user),
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.users.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":   "Login successful",
		"token": result.Token,
		"user":  profileOf(result.User),
	})
}

func (s *HTTPServer) handleCreateTrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Any owner field in the body is ignored: ownership comes from the
	// verified token only.
	var payload struct {
		EnergyUnits  float64 `json:"energyUnits"`
		PricePerUnit float64 `json:"pricePerUnit"`
		TradeType    string  `json:"tradeType"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trade, err := s.trades.Create(ctx, userID, payload.EnergyUnits, payload.PricePerUnit, payload.TradeType)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(ctx, "trade recorded", "trade_id", trade.ID, "owner_id", trade.OwnerID)
	writeJSON(w, http.StatusOK, map[string]any{
		"msg":   "Trade recorded",
		"trade": trade,
	})
}

func (s *HTTPServer) handleMyTrades(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(ctx)
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := s.trades.ListByOwner(ctx, userID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if list == nil {
		list = []*models.Trade{}
	}

	writeJSON(w, http.StatusOK, list)
}

// writeServiceError translates domain errors into the wire contract. Internal
// detail is logged server-side only.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMsg(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeMsg(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrorUnauthorized):
		writeMsg(w, http.StatusUnauthorized, "Unauthorized")
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMsg(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}
