package models

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectRecruiting ProjectStatus = "RECRUITING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectRecruiting, ProjectInProgress, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// CanAcceptMembers reports whether the project is open to new members.
func (s ProjectStatus) CanAcceptMembers() bool { return s == ProjectRecruiting }

// ProjectRole is a member's role within a project team.
type ProjectRole string

const (
	RoleLead   ProjectRole = "LEAD"
	RoleMember ProjectRole = "MEMBER"
)

func (r ProjectRole) Valid() bool { return r == RoleLead || r == RoleMember }

// ProposalStatus is the state of an invitation or join request.
// PENDING is the only non-terminal state; ACCEPTED, REJECTED, CANCELLED and
// EXPIRED are terminal and immutable.
type ProposalStatus string

const (
	StatusPending   ProposalStatus = "PENDING"
	StatusAccepted  ProposalStatus = "ACCEPTED"
	StatusRejected  ProposalStatus = "REJECTED"
	StatusCancelled ProposalStatus = "CANCELLED"
	StatusExpired   ProposalStatus = "EXPIRED"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether the status can no longer change.
func (s ProposalStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusCancelled || s == StatusExpired
}

// proposalTransitions is the full transition table for proposal state.
// Every mutating operation validates against this table instead of doing
// ad-hoc status comparisons.
var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	StatusPending: {StatusAccepted, StatusRejected, StatusCancelled, StatusExpired},
}

// CanTransition reports whether a proposal may move from one status to another.
func (s ProposalStatus) CanTransition(to ProposalStatus) bool {
	for _, next := range proposalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
