package converter

import (
	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/domain/entity"
)

// VitalSignToResponse converts a VitalSign entity to its response DTO.
// Includes the patient projection when it is loaded.
func VitalSignToResponse(vitalSign *entity.VitalSign) *dto.VitalSignResponse {
	if vitalSign == nil {
		return nil
	}

	response := &dto.VitalSignResponse{
		ID:                vitalSign.ID,
		PatientID:         vitalSign.PatientID,
		Temperature:       vitalSign.Temperature,
		OxygenSaturation:  vitalSign.OxygenSaturation,
		HeartRate:         vitalSign.HeartRate,
		SystolicPressure:  vitalSign.SystolicPressure,
		DiastolicPressure: vitalSign.DiastolicPressure,
		Notes:             vitalSign.Notes,
		Timestamp:         vitalSign.Timestamp,
	}

	if vitalSign.Patient != nil {
		response.Patient = &dto.VitalSignPatientResponse{
			ID:       vitalSign.Patient.ID,
			Nombre:   vitalSign.Patient.Nombre,
			Apellido: vitalSign.Patient.Apellido,
			Cedula:   vitalSign.Patient.Cedula,
		}
	}

	return response
}

func VitalSignsToResponses(vitalSigns []entity.VitalSign) []*dto.VitalSignResponse {
	responses := make([]*dto.VitalSignResponse, 0, len(vitalSigns))
	for i := range vitalSigns {
		responses = append(responses, VitalSignToResponse(&vitalSigns[i]))
	}
	return responses
}
