package generator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"MarketBench/internal/model"
)

// MockSource returns controllable deterministic data for development and testing.
type MockSource struct {
	Companies []string
	Profiles  []model.Profile
	n         int
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Company() string {
	m.n++
	if len(m.Companies) == 0 {
		return fmt.Sprintf("Mock Holdings %d Inc", m.n)
	}
	return m.Companies[m.n%len(m.Companies)]
}

func (m *MockSource) Profile() model.Profile {
	m.n++
	if len(m.Profiles) > 0 {
		return m.Profiles[m.n%len(m.Profiles)]
	}
	return model.Profile{
		Name:       fmt.Sprintf("Mock Person %d", m.n),
		Username:   fmt.Sprintf("mock%d", m.n),
		BloodGroup: bloodGroups[m.n%len(bloodGroups)],
		Birthdate:  time.Date(1950+m.n%50, time.Month(1+m.n%12), 1+m.n%28, 0, 0, 0, 0, time.UTC),
		CurrentLocation: [2]decimal.Decimal{
			decimal.NewFromInt(int64(m.n%180 - 90)),
			decimal.NewFromInt(int64(m.n%360 - 180)),
		},
	}
}

func (m *MockSource) IntRange(min, max int) int {
	m.n++
	return min + m.n%(max-min+1)
}

func (m *MockSource) Float64Range(min, max float64) float64 {
	m.n++
	return min + float64(m.n%7)*(max-min)/7
}
