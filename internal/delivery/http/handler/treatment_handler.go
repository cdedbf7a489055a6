package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/usecase"
	"go-dental-clinic/pkg/response"
	"go-dental-clinic/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type TreatmentHandler struct {
	log              *logrus.Logger
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(log *logrus.Logger, treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		log:              log,
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

func (h *TreatmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.treatmentUsecase.GetAllTreatments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to retrieve treatments")
		return
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", result)
}

func (h *TreatmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid treatment ID")
		return
	}

	result, err := h.treatmentUsecase.GetTreatment(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Failed to retrieve treatment")
		return
	}

	response.Success(w, http.StatusOK, "Treatment retrieved successfully", result)
}

func (h *TreatmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.treatmentUsecase.CreateTreatment(r.Context(), &req)
	if err != nil {
		h.handleError(w, err, "Failed to create treatment")
		return
	}

	response.Success(w, http.StatusCreated, "Treatment created successfully", result)
}

func (h *TreatmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid treatment ID")
		return
	}

	if err := h.treatmentUsecase.DeleteTreatment(r.Context(), id); err != nil {
		h.handleError(w, err, "Failed to delete treatment")
		return
	}

	response.Success(w, http.StatusOK, "Treatment deleted successfully", nil)
}

func (h *TreatmentHandler) handleError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrTreatmentNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrTreatmentInUse):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidPrice):
		response.BadRequest(w, err.Error())
	default:
		h.log.Errorf("%s: %+v", fallback, err)
		response.InternalServerError(w, fallback)
	}
}
