package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/delivery/http/middleware"
	"enfermeria-api/internal/usecase"
	"enfermeria-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// VitalSignHandler leaves payload validation to the measurement rules in the
// usecase; requests only need decoding here.
type VitalSignHandler struct {
	vitalSignUsecase usecase.VitalSignUsecase
}

func NewVitalSignHandler(vitalSignUsecase usecase.VitalSignUsecase) *VitalSignHandler {
	return &VitalSignHandler{vitalSignUsecase: vitalSignUsecase}
}

// GetVitalSignsByPatient handles listing a patient's vital signs
// @Summary List patient vital signs
// @Description List vital signs of one patient, newest first
// @Tags VitalSigns
// @Security BearerAuth
// @Produce json
// @Param patientId path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vital-signs/patient/{patientId} [get]
func (h *VitalSignHandler) GetVitalSignsByPatient(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	vitalSigns, err := h.vitalSignUsecase.GetVitalSignsByPatient(r.Context(), actor, patientID)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			internalError(w, "Failed to get vital signs", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital signs retrieved successfully", vitalSigns)
}

// CreateVitalSign handles recording a measurement for a patient
// @Summary Create vital sign
// @Description Record a vital-sign measurement for a patient
// @Tags VitalSigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param patientId path int true "Patient ID"
// @Param request body dto.CreateVitalSignRequest true "Create Vital Sign Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vital-signs/patient/{patientId} [post]
func (h *VitalSignHandler) CreateVitalSign(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	patientID, err := strconv.Atoi(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.CreateVitalSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	vitalSign, err := h.vitalSignUsecase.CreateVitalSign(r.Context(), actor, patientID, &req)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, use RFC 3339", nil)
		default:
			internalError(w, "Failed to create vital sign", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vital sign created successfully", vitalSign)
}

// UpdateVitalSign handles partial edits of a measurement
// @Summary Update vital sign
// @Description Update fields of a recorded measurement; optional fields accept null to clear
// @Tags VitalSigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vital Sign ID"
// @Param request body dto.UpdateVitalSignRequest true "Update Vital Sign Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vital-signs/{id} [put]
func (h *VitalSignHandler) UpdateVitalSign(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vital sign ID", nil)
		return
	}

	var req dto.UpdateVitalSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	vitalSign, err := h.vitalSignUsecase.UpdateVitalSign(r.Context(), actor, id, &req)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrVitalSignNotFound:
			response.NotFound(w, "Vital sign not found")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, use RFC 3339", nil)
		default:
			internalError(w, "Failed to update vital sign", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital sign updated successfully", vitalSign)
}

// DeleteVitalSign handles deleting a measurement
// @Summary Delete vital sign
// @Description Delete a recorded measurement (administrators only)
// @Tags VitalSigns
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vital Sign ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vital-signs/{id} [delete]
func (h *VitalSignHandler) DeleteVitalSign(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vital sign ID", nil)
		return
	}

	if err := h.vitalSignUsecase.DeleteVitalSign(r.Context(), actor, id); err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrVitalSignNotFound:
			response.NotFound(w, "Vital sign not found")
		default:
			internalError(w, "Failed to delete vital sign", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Vital sign deleted successfully", nil)
}
