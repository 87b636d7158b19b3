// Package stats derives the dashboard summary from raw patient, vital-sign
// and user snapshots. Everything is computed from the inputs and the
// injected clock, so the aggregation is deterministic.
package stats

import (
	"sort"
	"time"

	"enfermeria-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DailyWindowDays is the size of the rolling daily sample series, the
// current day included.
const DailyWindowDays = 30

// RecentPatientLimit caps the recent-patients projection.
const RecentPatientLimit = 4

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RecentPatient is a reduced projection without clinical detail.
type RecentPatient struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Semestre  *string   `json:"semestre,omitempty"`
	Area      string    `json:"area"`
	Carrera   string    `json:"carrera"`
	CreatedAt time.Time `json:"created_at"`
}

type Summary struct {
	TotalPatients   int             `json:"totalPatients"`
	TotalVitalSigns int             `json:"totalVitalSigns"`
	ActiveUsers     int             `json:"activeUsers"`
	PatientsByGrade []GradeCount    `json:"patientsByGrade"`
	PatientsByDay   []DayCount      `json:"patientsByDay"`
	AverageAge      float64         `json:"averageAge"`
	RecentPatients  []RecentPatient `json:"recentPatients"`
}

// Aggregate computes the full dashboard summary from one input snapshot.
// now is injected; no global clock is read.
func Aggregate(patients []entity.Patient, vitals []entity.VitalSign, users []entity.User, now time.Time) Summary {
	return Summary{
		TotalPatients:   len(patients),
		TotalVitalSigns: len(vitals),
		ActiveUsers:     countActiveUsers(users),
		PatientsByGrade: groupByGrade(patients),
		PatientsByDay:   dailySampleSeries(vitals, now),
		AverageAge:      averageAge(patients, now),
		RecentPatients:  recentPatients(patients),
	}
}

func countActiveUsers(users []entity.User) int {
	count := 0
	for _, u := range users {
		if u.Activo != nil && *u.Activo {
			count++
		}
	}
	return count
}

// groupByGrade buckets student patients by their semester label, ascending.
// Patients without a semester (non-students) are excluded entirely.
func groupByGrade(patients []entity.Patient) []GradeCount {
	counts := make(map[string]int)
	for _, p := range patients {
		if p.Area != entity.AreaEstudiante || p.Semestre == nil {
			continue
		}
		counts[*p.Semestre]++
	}

	grades := make([]string, 0, len(counts))
	for grade := range counts {
		grades = append(grades, grade)
	}
	sort.Strings(grades)

	result := make([]GradeCount, 0, len(grades))
	for _, grade := range grades {
		result = append(result, GradeCount{Grade: grade, Count: counts[grade]})
	}
	return result
}

// dailySampleSeries counts vital-sign samples per calendar day over the
// last DailyWindowDays days ending today. Every day is present, zero-filled,
// ascending by date. Each reading counts once regardless of patient.
func dailySampleSeries(vitals []entity.VitalSign, now time.Time) []DayCount {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	index := make(map[string]int, DailyWindowDays)
	series := make([]DayCount, 0, DailyWindowDays)
	for i := DailyWindowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		index[key] = len(series)
		series = append(series, DayCount{Date: key})
	}

	for _, v := range vitals {
		key := v.Timestamp.In(now.Location()).Format("2006-01-02")
		if i, ok := index[key]; ok {
			series[i].Count++
		}
	}

	return series
}

// averageAge is the arithmetic mean of whole-year ages, rounded to one
// decimal place. Zero patients yields 0.
func averageAge(patients []entity.Patient, now time.Time) float64 {
	if len(patients) == 0 {
		return 0
	}

	totalAge := 0
	for _, p := range patients {
		totalAge += AgeInYears(p.FechaNacimiento, now)
	}

	mean := decimal.NewFromInt(int64(totalAge)).Div(decimal.NewFromInt(int64(len(patients))))
	return mean.Round(1).InexactFloat64()
}

// AgeInYears computes age in whole years at now, decrementing when the
// birthday has not yet occurred this year.
func AgeInYears(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// recentPatients returns the newest-first reduced projection of the last
// created patients.
func recentPatients(patients []entity.Patient) []RecentPatient {
	sorted := make([]entity.Patient, len(patients))
	copy(sorted, patients)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	limit := RecentPatientLimit
	if len(sorted) < limit {
		limit = len(sorted)
	}

	result := make([]RecentPatient, 0, limit)
	for _, p := range sorted[:limit] {
		result = append(result, RecentPatient{
			ID:        p.ID,
			Nombre:    p.Nombre,
			Apellido:  p.Apellido,
			Semestre:  p.Semestre,
			Area:      p.Area,
			Carrera:   p.Carrera,
			CreatedAt: p.CreatedAt,
		})
	}
	return result
}
