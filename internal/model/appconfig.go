package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default engine settings applied to new projects
	DefaultStockRoundingIncrement float64   `json:"default_stock_rounding_increment"`
	DefaultKerfWidth              float64   `json:"default_kerf_width"`
	DefaultStockLengthFt          float64   `json:"default_stock_length_ft"`
	DefaultCandidateLengthsFt     []float64 `json:"default_candidate_lengths_ft"`
	DefaultRunOptimization        bool      `json:"default_run_optimization"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultStockRoundingIncrement: defaults.StockRoundingIncrement,
		DefaultKerfWidth:              defaults.KerfWidth,
		DefaultStockLengthFt:          defaults.DesiredStockLengthFt,
		DefaultCandidateLengthsFt:     defaults.CandidateStockLengthsFt,
		DefaultRunOptimization:        defaults.RunOptimization,
		RecentProjects:                []string{},
	}
}

// maxRecentProjects caps the recent-project list length.
const maxRecentProjects = 10

// AddRecentProject records a project path at the front of the recent list.
// An earlier occurrence of the same path is removed rather than duplicated.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p == path {
			continue
		}
		recent = append(recent, p)
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}

// ApplyToSettings copies the default values from AppConfig into a NestSettings
// struct. Used when creating a new project so it inherits saved defaults.
func (c AppConfig) ApplyToSettings(s *NestSettings) {
	s.StockRoundingIncrement = c.DefaultStockRoundingIncrement
	s.KerfWidth = c.DefaultKerfWidth
	s.DesiredStockLengthFt = c.DefaultStockLengthFt
	if len(c.DefaultCandidateLengthsFt) > 0 {
		s.CandidateStockLengthsFt = append([]float64(nil), c.DefaultCandidateLengthsFt...)
	}
	s.RunOptimization = c.DefaultRunOptimization
}
