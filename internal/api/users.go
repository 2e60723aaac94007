package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lvroom/living-room-api/internal/auth"
	"github.com/lvroom/living-room-api/internal/infrastructure/config"
)

// userRequest is the request body for creating or replacing a user.
// The password travels in requests only; responses never include it.
type userRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("listing users", "error", err)
		writeInternalError(w, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		s.logger.Error("fetching user", "error", err, "user_id", id)
		writeInternalError(w, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	user := auth.User{ID: req.ID, Name: req.Name, Email: req.Email}
	if err := user.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	stored, err := s.encodePassword(req.Password)
	if err != nil {
		s.logger.Error("encoding password", "error", err)
		writeInternalError(w, "internal server error")
		return
	}
	user.Password = stored

	if err := s.users.Create(r.Context(), &user); err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			writeConflict(w, err.Error())
			return
		}
		s.logger.Error("creating user", "error", err, "user_id", user.ID)
		writeInternalError(w, "internal server error")
		return
	}

	w.Header().Set("Location", "/api/v1/users/"+user.ID)
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleReplaceUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.ID != id {
		writeBadRequest(w, "identifier in body does not match URL")
		return
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	user := auth.User{ID: req.ID, Name: req.Name, Email: req.Email}
	if err := user.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	stored, err := s.encodePassword(req.Password)
	if err != nil {
		s.logger.Error("encoding password", "error", err)
		writeInternalError(w, "internal server error")
		return
	}
	user.Password = stored

	if err := s.users.Replace(r.Context(), id, &user); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeNotFound(w, "user not found")
		case errors.Is(err, auth.ErrUserExists):
			writeConflict(w, err.Error())
		default:
			s.logger.Error("replacing user", "error", err, "user_id", id)
			writeInternalError(w, "internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if id == auth.AdminUserID {
		writeBadRequest(w, auth.ErrProtectedUser.Error())
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		s.logger.Error("deleting user", "error", err, "user_id", id)
		writeInternalError(w, "internal server error")
		return
	}

	if claims := claimsFromContext(r.Context()); claims != nil {
		s.logger.Info("user deleted", "user_id", id, "actor", claims.Subject)
	}
	w.WriteHeader(http.StatusNoContent)
}

// encodePassword prepares a plaintext password for storage using the
// configured scheme.
func (s *Server) encodePassword(password string) (string, error) {
	if s.secCfg.PasswordScheme == config.PasswordSchemeArgon2id {
		return auth.HashPassword(password)
	}
	return auth.Encode(password), nil
}
