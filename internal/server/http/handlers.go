package http

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

type registerUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type registerUserResponse struct {
	Message string    `json:"message"`
	APIKey  string    `json:"apiKey"`
	Expires time.Time `json:"expires"`
}

type validateKeyRequest struct {
	APIKey string `json:"apiKeyToValidate"`
}

type validateKeyResponse struct {
	Valid   bool              `json:"valid"`
	Message string            `json:"message"`
	Reason  string            `json:"reason,omitempty"`
	Status  *models.KeyStatus `json:"status,omitempty"`
	Expires *time.Time        `json:"expires,omitempty"`
}

type adminCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminRegisteredResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Email   string `json:"email"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "APIKeeper server is running", "status": "OK"})
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	reg, err := s.deps.Registration.RegisterUser(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerUserResponse{
		Message: "registration successful",
		APIKey:  reg.APIKey,
		Expires: reg.Expires,
	})
}

// handleValidateKey answers 200 for a valid key, 401 for an unknown one and
// 403 for an inactive or expired one.
func (s *Server) handleValidateKey(w http.ResponseWriter, r *http.Request) {
	var req validateKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	res, err := s.deps.Validation.ValidateKey(r.Context(), req.APIKey)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := validateKeyResponse{Valid: res.Valid, Message: res.Message()}
	code := http.StatusOK

	switch res.Reason {
	case models.ReasonNone:
		expires := res.Expires
		resp.Expires = &expires
	case models.ReasonKeyNotFound:
		code = http.StatusUnauthorized
		resp.Reason = string(res.Reason)
	case models.ReasonKeyInactive:
		code = http.StatusForbidden
		resp.Reason = string(res.Reason)
		status := res.Status
		resp.Status = &status
	case models.ReasonKeyExpired:
		code = http.StatusForbidden
		resp.Reason = string(res.Reason)
	}

	writeJSON(w, code, resp)
}

func (s *Server) handleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminCredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	admin, err := s.deps.Admin.RegisterAdmin(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, adminRegisteredResponse{Message: "admin registered", ID: admin.ID, Email: admin.Email})
}

func (s *Server) handleLoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminCredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	token, err := s.deps.Admin.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "login successful", Token: token})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := s.deps.Admin.ListUsersWithKeys(r.Context(), adminFromContext(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}
