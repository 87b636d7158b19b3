// Package vitals validates candidate vital-sign readings against clinical
// plausibility rules before anything is persisted.
package vitals

import (
	"fmt"
	"strings"

	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/pkg/opt"
)

// Physiological bounds
const (
	TemperatureMin = 30.0
	TemperatureMax = 45.0
	HeartRateMin   = 40
	HeartRateMax   = 200
	SystolicMin    = 50
	SystolicMax    = 250
	DiastolicMin   = 30
	DiastolicMax   = 150
	OxygenMin      = 70.0
	OxygenMax      = 100.0
)

// Reading is a candidate measurement. Fields are tri-state so a partial
// update can tell "not supplied" from "supplied as null".
type Reading struct {
	Temperature       opt.Field[float64]
	OxygenSaturation  opt.Field[float64]
	HeartRate         opt.Field[int]
	SystolicPressure  opt.Field[int]
	DiastolicPressure opt.Field[int]
}

// ValidationError names the violated field and the reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// MissingFieldsError reports every absent required field at once.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ValidateNew checks a reading for a create. Required fields missing fail
// fast as one combined error before any range check runs.
func ValidateNew(r Reading) error {
	var missing []string
	if !r.Temperature.Set || !r.Temperature.Valid {
		missing = append(missing, "temperature")
	}
	if !r.HeartRate.Set || !r.HeartRate.Valid {
		missing = append(missing, "heart_rate")
	}
	if !r.SystolicPressure.Set || !r.SystolicPressure.Valid {
		missing = append(missing, "systolic_pressure")
	}
	if !r.DiastolicPressure.Set || !r.DiastolicPressure.Valid {
		missing = append(missing, "diastolic_pressure")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if err := checkRanges(r); err != nil {
		return err
	}

	if r.SystolicPressure.Value <= r.DiastolicPressure.Value {
		return &ValidationError{
			Field:  "systolic_pressure",
			Reason: "must be greater than diastolic pressure",
		}
	}

	return nil
}

// ValidateUpdate checks only the supplied fields of a partial update, but
// evaluates the systolic/diastolic consistency rule against the record that
// would result from applying the patch to current.
func ValidateUpdate(r Reading, current *entity.VitalSign) error {
	for _, f := range []struct {
		name  string
		field opt.Field[int]
	}{
		{"heart_rate", r.HeartRate},
		{"systolic_pressure", r.SystolicPressure},
		{"diastolic_pressure", r.DiastolicPressure},
	} {
		if f.field.Set && !f.field.Valid {
			return &ValidationError{Field: f.name, Reason: "must not be null"}
		}
	}
	if r.Temperature.Set && !r.Temperature.Valid {
		return &ValidationError{Field: "temperature", Reason: "must not be null"}
	}

	if err := checkRanges(r); err != nil {
		return err
	}

	systolic := current.SystolicPressure
	diastolic := current.DiastolicPressure
	if v := r.SystolicPressure.Ptr(); v != nil {
		systolic = v
	}
	if v := r.DiastolicPressure.Ptr(); v != nil {
		diastolic = v
	}
	if systolic != nil && diastolic != nil && *systolic <= *diastolic {
		return &ValidationError{
			Field:  "systolic_pressure",
			Reason: "must be greater than diastolic pressure",
		}
	}

	return nil
}

// ValidateSample checks a raw sensor submission: heart rate, oxygen
// saturation and temperature only, no pressures and no patient.
func ValidateSample(heartRate int, oxygenSaturation, temperature float64) error {
	r := Reading{
		Temperature:      opt.Of(temperature),
		OxygenSaturation: opt.Of(oxygenSaturation),
		HeartRate:        opt.Of(heartRate),
	}
	return checkRanges(r)
}

// checkRanges applies the independent per-field bounds to every field that
// carries a value.
func checkRanges(r Reading) error {
	if r.Temperature.Set && r.Temperature.Valid {
		if r.Temperature.Value < TemperatureMin || r.Temperature.Value > TemperatureMax {
			return &ValidationError{
				Field:  "temperature",
				Reason: fmt.Sprintf("must be between %.0f°C and %.0f°C", TemperatureMin, TemperatureMax),
			}
		}
	}
	if r.HeartRate.Set && r.HeartRate.Valid {
		if r.HeartRate.Value < HeartRateMin || r.HeartRate.Value > HeartRateMax {
			return &ValidationError{
				Field:  "heart_rate",
				Reason: fmt.Sprintf("must be between %d and %d bpm", HeartRateMin, HeartRateMax),
			}
		}
	}
	if r.SystolicPressure.Set && r.SystolicPressure.Valid {
		if r.SystolicPressure.Value < SystolicMin || r.SystolicPressure.Value > SystolicMax {
			return &ValidationError{
				Field:  "systolic_pressure",
				Reason: fmt.Sprintf("must be between %d and %d mmHg", SystolicMin, SystolicMax),
			}
		}
	}
	if r.DiastolicPressure.Set && r.DiastolicPressure.Valid {
		if r.DiastolicPressure.Value < DiastolicMin || r.DiastolicPressure.Value > DiastolicMax {
			return &ValidationError{
				Field:  "diastolic_pressure",
				Reason: fmt.Sprintf("must be between %d and %d mmHg", DiastolicMin, DiastolicMax),
			}
		}
	}
	if r.OxygenSaturation.Set && r.OxygenSaturation.Valid {
		if r.OxygenSaturation.Value < OxygenMin || r.OxygenSaturation.Value > OxygenMax {
			return &ValidationError{
				Field:  "oxygen_saturation",
				Reason: fmt.Sprintf("must be between %.0f%% and %.0f%%", OxygenMin, OxygenMax),
			}
		}
	}
	return nil
}
