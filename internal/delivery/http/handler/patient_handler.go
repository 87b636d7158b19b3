package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/delivery/http/middleware"
	"enfermeria-api/internal/domain/repository"
	"enfermeria-api/internal/usecase"
	"enfermeria-api/pkg/response"
	"enfermeria-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetAllPatients handles listing patients
// @Summary List patients
// @Description List patients, optionally filtered by search term or area
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param search query string false "Match against cedula, nombre or apellido"
// @Param area query string false "Filter by area"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	filter := repository.PatientFilter{
		Search: r.URL.Query().Get("search"),
		Area:   r.URL.Query().Get("area"),
	}

	patients, err := h.patientUsecase.GetAllPatients(r.Context(), actor, filter)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		internalError(w, "Failed to get patients", err)
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetPatient handles getting one patient with its vital-sign history
// @Summary Get patient
// @Description Get a patient by id, including registered vital signs
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), actor, id)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			internalError(w, "Failed to get patient", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// CreatePatient handles registering a patient
// @Summary Create patient
// @Description Register a new patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), actor, &req)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid fecha_nacimiento, use YYYY-MM-DD", nil)
		case usecase.ErrSemestreRequired:
			response.Error(w, http.StatusBadRequest, "Semestre is required for students", nil)
		case usecase.ErrCedulaAlreadyExists:
			response.Conflict(w, "A patient with this cedula already exists", "cedula")
		default:
			internalError(w, "Failed to create patient", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

// UpdatePatient handles partial patient edits
// @Summary Update patient
// @Description Update patient fields; clinical free-text fields accept null to clear
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), actor, id, &req)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid fecha_nacimiento, use YYYY-MM-DD", nil)
		case usecase.ErrSemestreRequired:
			response.Error(w, http.StatusBadRequest, "Semestre is required for students", nil)
		case usecase.ErrCedulaAlreadyExists:
			response.Conflict(w, "A patient with this cedula already exists", "cedula")
		default:
			internalError(w, "Failed to update patient", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// DeletePatient handles deleting a patient and its vital-sign history
// @Summary Delete patient
// @Description Delete a patient; registered vital signs are removed with it
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), actor, id); err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			internalError(w, "Failed to delete patient", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
