package models

import (
	"testing"
	"time"
)

func TestAdvancePhaseAppendsNewEntry(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p := Project{CurrentPhase: PhaseConceptDesign}

	p.AdvancePhase(PhaseDesignStage, "", now)

	if p.CurrentPhase != PhaseDesignStage {
		t.Errorf("CurrentPhase = %q, want %q", p.CurrentPhase, PhaseDesignStage)
	}
	if len(p.Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(p.Phases))
	}
	entry := p.Phases[0]
	if entry.Name != PhaseDesignStage {
		t.Errorf("entry name = %q", entry.Name)
	}
	if entry.Status != PhaseInProgress {
		t.Errorf("entry status = %q, want %q", entry.Status, PhaseInProgress)
	}
	if !entry.StartDate.Equal(now) {
		t.Errorf("StartDate = %v, want %v", entry.StartDate, now)
	}
	if entry.EndDate != nil {
		t.Errorf("EndDate = %v, want nil", entry.EndDate)
	}
	if entry.Position != 0 {
		t.Errorf("Position = %d, want 0", entry.Position)
	}
}

func TestAdvancePhaseUpdatesExistingEntry(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 20, 17, 30, 0, 0, time.UTC)
	p := Project{
		CurrentPhase: PhaseDesignStage,
		Phases: []ProjectPhase{
			{Name: PhaseConceptDesign, Status: PhaseCompleted, StartDate: start, Position: 0},
			{Name: PhaseDesignStage, Status: PhaseInProgress, StartDate: start, Position: 1},
		},
	}

	p.AdvancePhase(PhaseDesignStage, PhaseCompleted, now)

	if len(p.Phases) != 2 {
		t.Fatalf("len(Phases) = %d, want 2", len(p.Phases))
	}
	entry := p.Phases[1]
	if entry.Status != PhaseCompleted {
		t.Errorf("status = %q, want %q", entry.Status, PhaseCompleted)
	}
	if entry.EndDate == nil || !entry.EndDate.Equal(now) {
		t.Errorf("EndDate = %v, want %v", entry.EndDate, now)
	}
	if !entry.StartDate.Equal(start) {
		t.Errorf("StartDate changed: %v", entry.StartDate)
	}
}

func TestAdvancePhaseEndDateSetOnce(t *testing.T) {
	first := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)
	p := Project{}

	p.AdvancePhase(PhaseSiteExecution, PhaseCompleted, first)
	p.AdvancePhase(PhaseSiteExecution, PhaseCompleted, later)

	if len(p.Phases) != 1 {
		t.Fatalf("len(Phases) = %d, want 1", len(p.Phases))
	}
	if p.Phases[0].EndDate == nil || !p.Phases[0].EndDate.Equal(first) {
		t.Errorf("EndDate = %v, want first completion %v", p.Phases[0].EndDate, first)
	}
}

func TestAdvancePhaseEmptyStatusKeepsExisting(t *testing.T) {
	now := time.Now()
	p := Project{
		Phases: []ProjectPhase{
			{Name: PhaseWorkingDrawings, Status: PhaseCompleted, StartDate: now, Position: 0},
		},
	}

	p.AdvancePhase(PhaseWorkingDrawings, "", now)

	if p.Phases[0].Status != PhaseCompleted {
		t.Errorf("status = %q, want %q", p.Phases[0].Status, PhaseCompleted)
	}
}

func TestAdvancePhaseEmptyNameIgnored(t *testing.T) {
	p := Project{CurrentPhase: PhaseConceptDesign}

	p.AdvancePhase("", PhaseCompleted, time.Now())

	if p.CurrentPhase != PhaseConceptDesign {
		t.Errorf("CurrentPhase = %q, want unchanged", p.CurrentPhase)
	}
	if len(p.Phases) != 0 {
		t.Errorf("len(Phases) = %d, want 0", len(p.Phases))
	}
}

func TestValidPhaseName(t *testing.T) {
	for _, name := range []string{
		PhaseConceptDesign, PhaseDesignStage, Phase3DVisualization,
		PhaseApprovalDrawings, PhaseWorkingDrawings, PhaseSiteExecution, PhaseCompletion,
	} {
		if !ValidPhaseName(name) {
			t.Errorf("ValidPhaseName(%q) = false", name)
		}
	}
	for _, name := range []string{"", "concept design", "Handover"} {
		if ValidPhaseName(name) {
			t.Errorf("ValidPhaseName(%q) = true", name)
		}
	}
}
