package vitals

import (
	"errors"
	"testing"

	"enfermeria-api/internal/domain/entity"
	"enfermeria-api/pkg/opt"

	"github.com/stretchr/testify/assert"
)

func validReading() Reading {
	return Reading{
		Temperature:       opt.Of(37.0),
		OxygenSaturation:  opt.Of(98.0),
		HeartRate:         opt.Of(72),
		SystolicPressure:  opt.Of(120),
		DiastolicPressure: opt.Of(80),
	}
}

func TestValidateNewAcceptsPlausibleReading(t *testing.T) {
	assert.NoError(t, ValidateNew(validReading()))
}

func TestValidateNewReportsAllMissingFieldsAtOnce(t *testing.T) {
	err := ValidateNew(Reading{OxygenSaturation: opt.Of(98.0)})

	var missing *MissingFieldsError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"temperature", "heart_rate", "systolic_pressure", "diastolic_pressure"}, missing.Fields)
}

func TestValidateNewNullCountsAsMissing(t *testing.T) {
	r := validReading()
	r.HeartRate = opt.Null[int]()

	err := ValidateNew(r)

	var missing *MissingFieldsError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"heart_rate"}, missing.Fields)
}

func TestValidateNewMissingFieldsReportedBeforeRanges(t *testing.T) {
	// Temperature is absent and heart rate is out of range; the combined
	// missing-fields error must win.
	r := validReading()
	r.Temperature = opt.Field[float64]{}
	r.HeartRate = opt.Of(500)

	err := ValidateNew(r)

	var missing *MissingFieldsError
	assert.True(t, errors.As(err, &missing))
}

func TestValidateNewRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Reading)
		field  string
	}{
		{"temperature too low", func(r *Reading) { r.Temperature = opt.Of(29.9) }, "temperature"},
		{"temperature too high", func(r *Reading) { r.Temperature = opt.Of(45.1) }, "temperature"},
		{"heart rate too low", func(r *Reading) { r.HeartRate = opt.Of(39) }, "heart_rate"},
		{"heart rate too high", func(r *Reading) { r.HeartRate = opt.Of(201) }, "heart_rate"},
		{"systolic too low", func(r *Reading) { r.SystolicPressure = opt.Of(49) }, "systolic_pressure"},
		{"systolic too high", func(r *Reading) { r.SystolicPressure = opt.Of(251) }, "systolic_pressure"},
		{"diastolic too low", func(r *Reading) { r.DiastolicPressure = opt.Of(29) }, "diastolic_pressure"},
		{"diastolic too high", func(r *Reading) { r.DiastolicPressure = opt.Of(151) }, "diastolic_pressure"},
		{"oxygen too low", func(r *Reading) { r.OxygenSaturation = opt.Of(69.9) }, "oxygen_saturation"},
		{"oxygen too high", func(r *Reading) { r.OxygenSaturation = opt.Of(100.1) }, "oxygen_saturation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReading()
			tt.mutate(&r)

			err := ValidateNew(r)

			var validation *ValidationError
			assert.True(t, errors.As(err, &validation))
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}

func TestValidateNewBoundsAreInclusive(t *testing.T) {
	r := Reading{
		Temperature:       opt.Of(30.0),
		OxygenSaturation:  opt.Of(70.0),
		HeartRate:         opt.Of(200),
		SystolicPressure:  opt.Of(250),
		DiastolicPressure: opt.Of(150),
	}
	assert.NoError(t, ValidateNew(r))
}

func TestValidateNewSystolicMustExceedDiastolic(t *testing.T) {
	r := validReading()
	r.SystolicPressure = opt.Of(80)
	r.DiastolicPressure = opt.Of(80)

	err := ValidateNew(r)

	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, "systolic_pressure", validation.Field)
}

func TestValidateNewOxygenSaturationOptional(t *testing.T) {
	r := validReading()
	r.OxygenSaturation = opt.Field[float64]{}
	assert.NoError(t, ValidateNew(r))
}

func intPtr(v int) *int { return &v }

func currentVitalSign() *entity.VitalSign {
	return &entity.VitalSign{
		Temperature:       37.0,
		HeartRate:         72,
		SystolicPressure:  intPtr(120),
		DiastolicPressure: intPtr(80),
	}
}

func TestValidateUpdateEmptyPatch(t *testing.T) {
	assert.NoError(t, ValidateUpdate(Reading{}, currentVitalSign()))
}

func TestValidateUpdateRejectsNullForRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		patch Reading
		field string
	}{
		{"null temperature", Reading{Temperature: opt.Null[float64]()}, "temperature"},
		{"null heart rate", Reading{HeartRate: opt.Null[int]()}, "heart_rate"},
		{"null systolic", Reading{SystolicPressure: opt.Null[int]()}, "systolic_pressure"},
		{"null diastolic", Reading{DiastolicPressure: opt.Null[int]()}, "diastolic_pressure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.patch, currentVitalSign())

			var validation *ValidationError
			assert.True(t, errors.As(err, &validation))
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}

func TestValidateUpdateChecksRangesOnSuppliedFields(t *testing.T) {
	err := ValidateUpdate(Reading{HeartRate: opt.Of(300)}, currentVitalSign())

	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, "heart_rate", validation.Field)
}

func TestValidateUpdateCrossFieldAgainstAppliedResult(t *testing.T) {
	t.Run("new systolic below stored diastolic", func(t *testing.T) {
		err := ValidateUpdate(Reading{SystolicPressure: opt.Of(75)}, currentVitalSign())

		var validation *ValidationError
		assert.True(t, errors.As(err, &validation))
		assert.Equal(t, "systolic_pressure", validation.Field)
	})

	t.Run("new diastolic above stored systolic", func(t *testing.T) {
		err := ValidateUpdate(Reading{DiastolicPressure: opt.Of(130)}, currentVitalSign())

		var validation *ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("both supplied and consistent", func(t *testing.T) {
		patch := Reading{
			SystolicPressure:  opt.Of(140),
			DiastolicPressure: opt.Of(90),
		}
		assert.NoError(t, ValidateUpdate(patch, currentVitalSign()))
	})

	t.Run("rule skipped when stored pressures are absent", func(t *testing.T) {
		current := &entity.VitalSign{Temperature: 36.5, HeartRate: 70}
		assert.NoError(t, ValidateUpdate(Reading{SystolicPressure: opt.Of(120)}, current))
	})
}

func TestValidateSample(t *testing.T) {
	t.Run("plausible sample", func(t *testing.T) {
		assert.NoError(t, ValidateSample(75, 97.5, 36.8))
	})

	t.Run("implausible temperature rejected", func(t *testing.T) {
		err := ValidateSample(75, 97.5, 12.0)

		var validation *ValidationError
		assert.True(t, errors.As(err, &validation))
		assert.Equal(t, "temperature", validation.Field)
	})

	t.Run("implausible pulse rejected", func(t *testing.T) {
		err := ValidateSample(0, 97.5, 36.8)

		var validation *ValidationError
		assert.True(t, errors.As(err, &validation))
		assert.Equal(t, "heart_rate", validation.Field)
	})
}
