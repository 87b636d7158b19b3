package handler

import (
	"errors"
	"net/http"
	"strconv"

	"enfermeria-api/internal/domain/vitals"
	"enfermeria-api/internal/usecase"
)

// SensorHandler receives readings pushed by the ESP32 monitor in the
// infirmary. The device firmware issues bare GETs and parses plain-text
// bodies, so this endpoint speaks text instead of the JSON envelope.
type SensorHandler struct {
	vitalSignUsecase usecase.VitalSignUsecase
}

func NewSensorHandler(vitalSignUsecase usecase.VitalSignUsecase) *SensorHandler {
	return &SensorHandler{vitalSignUsecase: vitalSignUsecase}
}

// SaveReading handles GET /esp32/guardar-lectura?pulso=&spo2=&temp=
func (h *SensorHandler) SaveReading(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pulso := query.Get("pulso")
	spo2 := query.Get("spo2")
	temp := query.Get("temp")

	if pulso == "" || spo2 == "" || temp == "" {
		plainText(w, http.StatusBadRequest, "ERROR: Datos incompletos. Se requieren pulso, spo2 y temp.")
		return
	}

	heartRate, err := strconv.Atoi(pulso)
	if err != nil {
		plainText(w, http.StatusBadRequest, "ERROR: pulso debe ser un numero.")
		return
	}
	oxygenSaturation, err := strconv.ParseFloat(spo2, 64)
	if err != nil {
		plainText(w, http.StatusBadRequest, "ERROR: spo2 debe ser un numero.")
		return
	}
	temperature, err := strconv.ParseFloat(temp, 64)
	if err != nil {
		plainText(w, http.StatusBadRequest, "ERROR: temp debe ser un numero.")
		return
	}

	if _, err := h.vitalSignUsecase.IngestSensorSample(r.Context(), heartRate, oxygenSaturation, temperature); err != nil {
		var validation *vitals.ValidationError
		if errors.As(err, &validation) {
			plainText(w, http.StatusBadRequest, "ERROR: "+validation.Error())
			return
		}
		plainText(w, http.StatusInternalServerError, "ERROR: Falló la inserción en la base de datos.")
		return
	}

	plainText(w, http.StatusOK, "DATOS DE SIGNOS VITALES GUARDADOS.")
}

func plainText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
