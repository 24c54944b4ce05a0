package domain

// Role represents user role in the system
type Role string

const (
	RoleRequester   Role = "REQUESTER"
	RolePilot       Role = "PILOT"
	RoleCoordinator Role = "COORDINATOR"
)

// RequestStatus represents the lifecycle status of a flight request
type RequestStatus string

const (
	RequestRequested  RequestStatus = "requested"
	RequestApproved   RequestStatus = "approved"
	RequestScheduled  RequestStatus = "scheduled"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// ValidRequestStatus reports whether s is one of the known request statuses
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestRequested, RequestApproved, RequestScheduled,
		RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// requestTransitions is the allowed forward progression for a flight request.
// cancelled is reachable from any non-terminal state and handled separately.
var requestTransitions = map[RequestStatus]RequestStatus{
	RequestRequested:  RequestApproved,
	RequestApproved:   RequestScheduled,
	RequestScheduled:  RequestInProgress,
	RequestInProgress: RequestCompleted,
}

// IsTerminal reports whether no further transition is permitted
func (s RequestStatus) IsTerminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// Re-entering the current state is rejected.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s.IsTerminal() || next == s {
		return false
	}
	if next == RequestCancelled {
		return true
	}
	return requestTransitions[s] == next
}

// PlanStatus represents the lifecycle status of a flight plan
type PlanStatus string

const (
	PlanScheduled  PlanStatus = "scheduled"
	PlanConfirmed  PlanStatus = "confirmed"
	PlanInProgress PlanStatus = "in_progress"
	PlanCompleted  PlanStatus = "completed"
	PlanCancelled  PlanStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted
func (s PlanStatus) IsTerminal() bool {
	return s == PlanCompleted || s == PlanCancelled
}

// CanTransitionTo reports whether the transition s -> next is allowed
func (s PlanStatus) CanTransitionTo(next PlanStatus) bool {
	if s.IsTerminal() || next == s {
		return false
	}
	switch next {
	case PlanCancelled:
		return true
	case PlanConfirmed:
		return s == PlanScheduled
	case PlanInProgress:
		return s == PlanScheduled || s == PlanConfirmed
	case PlanCompleted:
		return s == PlanInProgress
	}
	return false
}

// Priority represents flight request priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is one of the known priorities
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// NotificationType identifies the lifecycle transition that produced a notification
type NotificationType string

const (
	NotifyNewRequest      NotificationType = "new_request"
	NotifyFlightScheduled NotificationType = "flight_scheduled"
	NotifyFlightCancelled NotificationType = "flight_cancelled"
	NotifyFlightCompleted NotificationType = "flight_completed"
)

// RateStatus represents hourly rate status
type RateStatus string

const (
	RateActive   RateStatus = "active"
	RateInactive RateStatus = "inactive"
)
