package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zengarden/apiserver/internal/services"
	"github.com/zengarden/apiserver/internal/store"
	"github.com/zengarden/apiserver/types"
)

// FlowerHandler provides HTTP handlers for flowers.
type FlowerHandler struct {
	flowerService *services.FlowerService
}

// NewFlowerHandler constructs a handler with the provided service.
func NewFlowerHandler(flowerService *services.FlowerService) *FlowerHandler {
	return &FlowerHandler{flowerService: flowerService}
}

// FlowerRouter registers flower routes on the given router. Every route
// requires authentication.
func FlowerRouter(r chi.Router, flowerService *services.FlowerService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewFlowerHandler(flowerService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListFlowers)
	r.Post("/", handler.CreateFlower)
	r.Route("/{flowerID}", func(r chi.Router) {
		r.Put("/", handler.UpdateFlower)
		r.Delete("/", handler.DeleteFlower)
	})
}

func (h *FlowerHandler) ListFlowers(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	flowers, err := h.flowerService.ListByOwner(r.Context(), caller.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list flowers")
		return
	}

	writeJSON(w, http.StatusOK, flowers)
}

func (h *FlowerHandler) CreateFlower(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req, err := parseFlowerBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.flowerService.Create(r.Context(), req.toFlower(), caller.ID)
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, "flower name is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create flower")
		return
	}

	writeJSON(w, http.StatusOK, created)
}

func (h *FlowerHandler) UpdateFlower(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseFlowerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := parseFlowerBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	flower := req.toFlower()
	flower.ID = id

	updated, err := h.flowerService.Update(r.Context(), flower, caller.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "flower name is required")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "flower not found")
		case errors.Is(err, services.ErrForbidden):
			writeError(w, http.StatusForbidden, "not authorized to update this flower")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update flower")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *FlowerHandler) DeleteFlower(w http.ResponseWriter, r *http.Request) {
	caller, err := userFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseFlowerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.flowerService.Delete(r.Context(), id, caller.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "flower not found")
		case errors.Is(err, services.ErrForbidden):
			writeError(w, http.StatusForbidden, "not authorized to delete this flower")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete flower")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Flower deleted successfully"})
}

// FlowerUpsertRequest is the JSON payload for create and update. Update
// has full-replacement semantics: omitted optional fields become null.
type FlowerUpsertRequest struct {
	Name              string                  `json:"name"`
	WateringIntensity *string                 `json:"watering_intensity"`
	LightLevel        *string                 `json:"light_level"`
	TemperatureRange  *types.TemperatureRange `json:"temperature_range"`
	Comment           *string                 `json:"comment"`
}

func (req FlowerUpsertRequest) toFlower() types.Flower {
	return types.Flower{
		Name:              req.Name,
		WateringIntensity: req.WateringIntensity,
		LightLevel:        req.LightLevel,
		TemperatureRange:  req.TemperatureRange,
		Comment:           req.Comment,
	}
}

func parseFlowerBody(r *http.Request) (FlowerUpsertRequest, error) {
	var req FlowerUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return FlowerUpsertRequest{}, err
	}
	return req, nil
}

// parseFlowerID rejects only non-numeric ids. Numeric ids that match no
// row fall through to the store's not-found path.
func parseFlowerID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "flowerID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid flower id")
	}
	return id, nil
}
