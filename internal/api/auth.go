package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lvroom/living-room-api/internal/auth"
)

// authenticateRequest is the credential payload for token issuance.
type authenticateRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// authenticateResponse carries a freshly issued bearer token.
type authenticateResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// handleAuthenticate verifies user credentials and issues a signed JWT.
// Every failure mode returns the same 401 so callers cannot probe for
// valid user identifiers.
func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	token, err := s.authn.Authenticate(r.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeUnauthorized(w, "invalid credentials")
			return
		}
		s.logger.Error("authenticating user", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, authenticateResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(auth.TokenTTL.Seconds()),
	})
}
