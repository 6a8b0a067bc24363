package generator

import "MarketBench/internal/model"

// DefaultProfiles is the batch size of the reference benchmark.
const DefaultProfiles = 10000

// Profiles holds one batch of generated profiles.
type Profiles struct {
	records []model.Profile
}

// GenerateProfiles draws n profiles from src.
func GenerateProfiles(src Source, n int) *Profiles {
	p := &Profiles{records: make([]model.Profile, 0, n)}
	for i := 0; i < n; i++ {
		p.records = append(p.records, src.Profile())
	}
	return p
}

// Len returns the number of profiles in the batch.
func (p *Profiles) Len() int { return len(p.records) }

// Records returns the profiles as structured records.
func (p *Profiles) Records() []model.Profile {
	out := make([]model.Profile, len(p.records))
	copy(out, p.records)
	return out
}

// Mappings returns the same profiles as key/value mappings.
func (p *Profiles) Mappings() []map[string]any {
	out := make([]map[string]any, len(p.records))
	for i, r := range p.records {
		out[i] = r.AsMap()
	}
	return out
}
