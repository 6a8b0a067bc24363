package generator

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"MarketBench/internal/model"
)

// Source defines the interface for producing random fake data.
type Source interface {
	Company() string
	Profile() model.Profile
	IntRange(min, max int) int
	Float64Range(min, max float64) float64
	Name() string
}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// FakerSource draws its data from gofakeit.
type FakerSource struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewFakerSource creates a FakerSource. A zero seed picks a random one.
func NewFakerSource(seed uint64) *FakerSource {
	return &FakerSource{faker: gofakeit.New(seed), now: time.Now}
}

func (s *FakerSource) Name() string { return "gofakeit" }

func (s *FakerSource) Company() string { return s.faker.Company() }

// IntRange returns a random integer in [min, max].
func (s *FakerSource) IntRange(min, max int) int { return s.faker.IntRange(min, max) }

// Float64Range returns a random float in [min, max].
func (s *FakerSource) Float64Range(min, max float64) float64 {
	return s.faker.Float64Range(min, max)
}

// Profile returns a fake profile. Birthdates fall within the last 115 years.
func (s *FakerSource) Profile() model.Profile {
	f := s.faker
	now := s.now()
	birth := f.DateRange(now.AddDate(-115, 0, 0), now)

	sites := make([]string, f.IntRange(1, 4))
	for i := range sites {
		sites[i] = f.URL()
	}

	return model.Profile{
		Job:       f.JobTitle(),
		Company:   f.Company(),
		SSN:       f.SSN(),
		Residence: f.Address().Address,
		CurrentLocation: [2]decimal.Decimal{
			decimal.NewFromFloat(f.Latitude()).Round(6),
			decimal.NewFromFloat(f.Longitude()).Round(6),
		},
		BloodGroup: f.RandomString(bloodGroups),
		Website:    sites,
		Username:   f.Username(),
		Name:       f.Name(),
		Sex:        f.RandomString([]string{"M", "F"}),
		Address:    f.Address().Address,
		Mail:       f.Email(),
		Birthdate:  time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC),
	}
}
