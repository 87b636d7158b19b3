package converter

import (
	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO. When the
// vital-sign history is preloaded the full list is included; list endpoints
// use PatientToListItem instead.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	response := patientBase(patient)
	if response == nil {
		return nil
	}

	if len(patient.SignosVitales) > 0 {
		response.SignosVitales = VitalSignsToResponses(patient.SignosVitales)
	}

	return response
}

// PatientToListItem projects a patient for listings: only the most recent
// vital sign is carried along.
func PatientToListItem(patient *entity.Patient) *dto.PatientResponse {
	response := patientBase(patient)
	if response == nil {
		return nil
	}

	if len(patient.SignosVitales) > 0 {
		response.UltimoSignoVital = VitalSignToResponse(&patient.SignosVitales[0])
	}

	return response
}

func PatientsToListItems(patients []entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToListItem(&patients[i]))
	}
	return responses
}

func patientBase(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:                 patient.ID,
		Nombre:             patient.Nombre,
		Apellido:           patient.Apellido,
		FechaNacimiento:    patient.FechaNacimiento.Format("2006-01-02"),
		Genero:             patient.Genero,
		Area:               patient.Area,
		Carrera:            patient.Carrera,
		Semestre:           patient.Semestre,
		Cedula:             patient.Cedula,
		Alergias:           patient.Alergias,
		Medicamentos:       patient.Medicamentos,
		ContactoEmergencia: patient.ContactoEmergencia,
		TelefonoEmergencia: patient.TelefonoEmergencia,
		CreatedAt:          patient.CreatedAt,
		UpdatedAt:          patient.UpdatedAt,
	}

	if patient.CreadoPor != nil {
		response.CreadoPor = &dto.CreatorResponse{
			ID:       patient.CreadoPor.ID,
			Nombre:   patient.CreadoPor.Nombre,
			Apellido: patient.CreadoPor.Apellido,
			Email:    patient.CreadoPor.Email,
		}
	}

	return response
}
