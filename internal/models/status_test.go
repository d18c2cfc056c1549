package models

import "testing"

func TestProposalStatus_Terminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("PENDING should not be terminal")
	}
	for _, s := range []ProposalStatus{StatusAccepted, StatusRejected, StatusCancelled, StatusExpired} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestProposalStatus_CanTransition(t *testing.T) {
	targets := []ProposalStatus{StatusAccepted, StatusRejected, StatusCancelled, StatusExpired}

	for _, to := range targets {
		if !StatusPending.CanTransition(to) {
			t.Errorf("PENDING -> %s should be allowed", to)
		}
	}

	// Terminal states are immutable, including self-transitions and a move
	// back to PENDING.
	for _, from := range targets {
		for _, to := range append(targets, StatusPending) {
			if from.CanTransition(to) {
				t.Errorf("%s -> %s should not be allowed", from, to)
			}
		}
	}
}

func TestProjectStatus_CanAcceptMembers(t *testing.T) {
	if !ProjectRecruiting.CanAcceptMembers() {
		t.Error("RECRUITING should accept members")
	}
	for _, s := range []ProjectStatus{ProjectInProgress, ProjectCompleted, ProjectCancelled} {
		if s.CanAcceptMembers() {
			t.Errorf("%s should not accept members", s)
		}
	}
}

func TestProjectStatus_Valid(t *testing.T) {
	if ProjectStatus("ARCHIVED").Valid() {
		t.Error("unknown status should not be valid")
	}
	if !ProjectCancelled.Valid() {
		t.Error("CANCELLED should be valid")
	}
}

func TestProject_CanDelete(t *testing.T) {
	tests := []struct {
		status ProjectStatus
		want   bool
	}{
		{ProjectRecruiting, true},
		{ProjectCancelled, true},
		{ProjectInProgress, false},
		{ProjectCompleted, false},
	}
	for _, tt := range tests {
		p := Project{Status: tt.status}
		if got := p.CanDelete(); got != tt.want {
			t.Errorf("CanDelete with status %s = %v, expected %v", tt.status, got, tt.want)
		}
	}
}
