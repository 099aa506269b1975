package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/habeshadev/habesha-dating-api/internal/middleware"
	"github.com/habeshadev/habesha-dating-api/internal/payload"
	"github.com/habeshadev/habesha-dating-api/internal/repository"
	"github.com/habeshadev/habesha-dating-api/internal/usecase"
	"github.com/habeshadev/habesha-dating-api/internal/validation"
)

// ProfileHandler serves the authenticated profile endpoints.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validation.Validator
	logger         *zerolog.Logger
}

func NewProfileHandler(
	profileUsecase usecase.ProfileUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
		logger:         logger,
	}
}

// Upsert creates the caller's profile on first call and overwrites the
// supplied fields on subsequent ones. Any owner value in the body is ignored.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req payload.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.profileUsecase.UpsertProfile(r.Context(), userID, repository.UpsertProfileParams{
		FirstName: req.FirstName,
		Age:       req.Age,
		Gender:    req.Gender,
		Languages: req.Languages,
		Culture:   req.Culture,
		Interests: req.Interests,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to upsert profile")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Get returns the caller's own profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	profile, err := h.profileUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get profile")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
