package stats

import (
	"testing"
	"time"

	"enfermeria-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestAggregateEmptySnapshot(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	summary := Aggregate(nil, nil, nil, now)

	assert.Equal(t, 0, summary.TotalPatients)
	assert.Equal(t, 0, summary.TotalVitalSigns)
	assert.Equal(t, 0, summary.ActiveUsers)
	assert.Empty(t, summary.PatientsByGrade)
	assert.Equal(t, 0.0, summary.AverageAge)
	assert.Empty(t, summary.RecentPatients)
	assert.Len(t, summary.PatientsByDay, DailyWindowDays)
	for _, day := range summary.PatientsByDay {
		assert.Equal(t, 0, day.Count)
	}
}

func TestDailySampleSeriesWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	vitals := []entity.VitalSign{
		{Timestamp: time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)},  // today, first second
		{Timestamp: time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)}, // today, late
		{Timestamp: time.Date(2025, 5, 17, 12, 0, 0, 0, time.UTC)},  // oldest day in window
		{Timestamp: time.Date(2025, 5, 16, 12, 0, 0, 0, time.UTC)},  // one day too old
		{Timestamp: time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC)},   // tomorrow
	}

	series := dailySampleSeries(vitals, now)

	assert.Len(t, series, DailyWindowDays)
	assert.Equal(t, "2025-05-17", series[0].Date)
	assert.Equal(t, "2025-06-15", series[DailyWindowDays-1].Date)
	assert.Equal(t, 1, series[0].Count)
	assert.Equal(t, 2, series[DailyWindowDays-1].Count)

	total := 0
	for _, day := range series {
		total += day.Count
	}
	assert.Equal(t, 3, total, "out-of-window samples must not be counted")
}

func TestDailySampleSeriesAscendingAndContiguous(t *testing.T) {
	now := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

	series := dailySampleSeries(nil, now)

	for i := 1; i < len(series); i++ {
		prev, _ := time.Parse("2006-01-02", series[i-1].Date)
		curr, _ := time.Parse("2006-01-02", series[i].Date)
		assert.Equal(t, prev.AddDate(0, 0, 1), curr)
	}
}

func TestAgeInYearsBirthdayRule(t *testing.T) {
	birth := time.Date(2005, 5, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		age  int
	}{
		{"day before birthday", time.Date(2025, 5, 14, 0, 0, 0, 0, time.UTC), 19},
		{"on birthday", time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), 20},
		{"day after birthday", time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC), 20},
		{"earlier month", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 19},
		{"later month", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.age, AgeInYears(birth, tt.now))
		})
	}
}

func TestAverageAgeRoundedToOneDecimal(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	patients := []entity.Patient{
		{FechaNacimiento: time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)}, // 20
		{FechaNacimiento: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)}, // 21
		{FechaNacimiento: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)}, // 21
	}

	// (20+21+21)/3 = 20.666... -> 20.7
	assert.Equal(t, 20.7, averageAge(patients, now))
}

func TestGroupByGrade(t *testing.T) {
	patients := []entity.Patient{
		{Area: entity.AreaEstudiante, Semestre: strPtr("3")},
		{Area: entity.AreaEstudiante, Semestre: strPtr("1")},
		{Area: entity.AreaEstudiante, Semestre: strPtr("3")},
		{Area: entity.AreaEstudiante, Semestre: nil},
		{Area: "docente", Semestre: strPtr("3")},
	}

	grades := groupByGrade(patients)

	assert.Equal(t, []GradeCount{
		{Grade: "1", Count: 1},
		{Grade: "3", Count: 2},
	}, grades)
}

func TestCountActiveUsers(t *testing.T) {
	users := []entity.User{
		{Activo: boolPtr(true)},
		{Activo: boolPtr(false)},
		{Activo: nil},
		{Activo: boolPtr(true)},
	}

	assert.Equal(t, 2, countActiveUsers(users))
}

func TestRecentPatients(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	patients := make([]entity.Patient, 0, 6)
	for i := 0; i < 6; i++ {
		patients = append(patients, entity.Patient{
			ID:        i + 1,
			Nombre:    "P",
			Area:      entity.AreaEstudiante,
			CreatedAt: base.AddDate(0, 0, i),
		})
	}

	recent := recentPatients(patients)

	assert.Len(t, recent, RecentPatientLimit)
	assert.Equal(t, 6, recent[0].ID)
	assert.Equal(t, 3, recent[3].ID)
}

func TestAggregateInputOrderIrrelevant(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	patients := []entity.Patient{
		{ID: 1, Area: entity.AreaEstudiante, Semestre: strPtr("2"), FechaNacimiento: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC), CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, Area: entity.AreaEstudiante, Semestre: strPtr("1"), FechaNacimiento: time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), CreatedAt: now.AddDate(0, 0, -2)},
		{ID: 3, Area: entity.AreaEstudiante, Semestre: strPtr("1"), FechaNacimiento: time.Date(2003, 1, 1, 0, 0, 0, 0, time.UTC), CreatedAt: now.AddDate(0, 0, -3)},
	}
	reversed := []entity.Patient{patients[2], patients[1], patients[0]}

	a := Aggregate(patients, nil, nil, now)
	b := Aggregate(reversed, nil, nil, now)

	assert.Equal(t, a, b)
}
