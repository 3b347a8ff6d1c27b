package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultKerfWidth != defaults.KerfWidth {
		t.Errorf("kerf = %g, want %g", cfg.DefaultKerfWidth, defaults.KerfWidth)
	}
	if cfg.DefaultStockRoundingIncrement != defaults.StockRoundingIncrement {
		t.Errorf("increment = %g, want %g", cfg.DefaultStockRoundingIncrement, defaults.StockRoundingIncrement)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should be initialized")
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()

	cfg.AddRecentProject("/jobs/a.json")
	cfg.AddRecentProject("/jobs/b.json")
	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("recent = %v, want 2 entries", cfg.RecentProjects)
	}
	if cfg.RecentProjects[0] != "/jobs/b.json" {
		t.Errorf("most recent = %s, want /jobs/b.json", cfg.RecentProjects[0])
	}

	// Re-adding moves to the front without duplicating
	cfg.AddRecentProject("/jobs/a.json")
	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("recent = %v, want 2 entries after re-add", cfg.RecentProjects)
	}
	if cfg.RecentProjects[0] != "/jobs/a.json" {
		t.Errorf("most recent = %s, want /jobs/a.json", cfg.RecentProjects[0])
	}
}

func TestAddRecentProjectCapsList(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 15; i++ {
		cfg.AddRecentProject(string(rune('a'+i)) + ".json")
	}
	if len(cfg.RecentProjects) != 10 {
		t.Errorf("recent list length = %d, want 10", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "o.json" {
		t.Errorf("most recent = %s, want o.json", cfg.RecentProjects[0])
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultKerfWidth = 0.25
	cfg.DefaultStockLengthFt = 40
	cfg.DefaultCandidateLengthsFt = []float64{40, 60}
	cfg.DefaultRunOptimization = false

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.KerfWidth != 0.25 {
		t.Errorf("kerf = %g, want 0.25", s.KerfWidth)
	}
	if s.DesiredStockLengthFt != 40 {
		t.Errorf("desired length = %g, want 40", s.DesiredStockLengthFt)
	}
	if len(s.CandidateStockLengthsFt) != 2 {
		t.Errorf("candidates = %v, want [40 60]", s.CandidateStockLengthsFt)
	}
	if s.RunOptimization {
		t.Error("optimization should be off")
	}
}
