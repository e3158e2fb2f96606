package models

import "testing"

func TestSubmitDrawing(t *testing.T) {
	task := Task{
		Status:         TaskInProgress,
		Progress:       70,
		ApprovalStatus: ApprovalRejected,
		ApprovalNotes:  "fix the stair section",
	}

	task.SubmitDrawing("drawings/plan-v2.pdf")

	if task.DrawingURL != "drawings/plan-v2.pdf" {
		t.Errorf("DrawingURL = %q", task.DrawingURL)
	}
	if task.Status != TaskReview {
		t.Errorf("Status = %q, want %q", task.Status, TaskReview)
	}
	if task.ApprovalStatus != ApprovalPending {
		t.Errorf("ApprovalStatus = %q, want %q", task.ApprovalStatus, ApprovalPending)
	}
	// Progress is untouched by submission
	if task.Progress != 70 {
		t.Errorf("Progress = %d, want 70", task.Progress)
	}
}

func TestApplyApprovalApproved(t *testing.T) {
	task := Task{Status: TaskReview, Progress: 80}

	if err := task.ApplyApproval(ApprovalApproved, "looks good"); err != nil {
		t.Fatalf("ApplyApproval: %v", err)
	}
	if task.Status != TaskCompleted {
		t.Errorf("Status = %q, want %q", task.Status, TaskCompleted)
	}
	if task.Progress != 100 {
		t.Errorf("Progress = %d, want 100", task.Progress)
	}
	if task.ApprovalStatus != ApprovalApproved {
		t.Errorf("ApprovalStatus = %q", task.ApprovalStatus)
	}
	if task.ApprovalNotes != "looks good" {
		t.Errorf("ApprovalNotes = %q", task.ApprovalNotes)
	}
}

func TestApplyApprovalRejected(t *testing.T) {
	// The reset to 50 applies whatever the prior progress was, lower included
	for _, prior := range []int{0, 20, 50, 95} {
		task := Task{Status: TaskReview, Progress: prior}

		if err := task.ApplyApproval(ApprovalRejected, "rework the facade"); err != nil {
			t.Fatalf("ApplyApproval: %v", err)
		}
		if task.Status != TaskInProgress {
			t.Errorf("prior=%d: Status = %q, want %q", prior, task.Status, TaskInProgress)
		}
		if task.Progress != 50 {
			t.Errorf("prior=%d: Progress = %d, want 50", prior, task.Progress)
		}
	}
}

func TestApplyApprovalInvalidDecision(t *testing.T) {
	task := Task{Status: TaskReview, Progress: 80, ApprovalStatus: ApprovalPending}

	if err := task.ApplyApproval("Maybe", "hmm"); err == nil {
		t.Fatal("expected error for invalid decision")
	}
	// An invalid decision must leave the task untouched
	if task.Status != TaskReview || task.Progress != 80 || task.ApprovalStatus != ApprovalPending {
		t.Errorf("task mutated on invalid decision: %+v", task)
	}
}
