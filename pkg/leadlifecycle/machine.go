package leadlifecycle

import (
	"github.com/salesflowhq/salesflow/pkg/domain"
)

// Status represents a lead lifecycle status.
type Status string

const (
	StatusNew         Status = "new"
	StatusQualified   Status = "qualified"
	StatusContacted   Status = "contacted"
	StatusResponded   Status = "responded"
	StatusConverted   Status = "converted"
	StatusClosed      Status = "closed"
	StatusUnqualified Status = "unqualified"
)

// AllStatuses lists every lead status, in workflow order.
var AllStatuses = []Status{
	StatusNew, StatusQualified, StatusContacted, StatusResponded,
	StatusConverted, StatusClosed, StatusUnqualified,
}

// allowedTransitions is the edge table of the lead workflow. `closed` is
// reachable from any non-terminal status and, with `converted`, is terminal.
var allowedTransitions = map[Status]map[Status]bool{
	StatusNew:         {StatusQualified: true, StatusUnqualified: true, StatusContacted: true, StatusClosed: true},
	StatusQualified:   {StatusContacted: true, StatusUnqualified: true, StatusClosed: true},
	StatusContacted:   {StatusResponded: true, StatusUnqualified: true, StatusClosed: true},
	StatusResponded:   {StatusConverted: true, StatusClosed: true},
	StatusUnqualified: {StatusClosed: true},
	StatusConverted:   {},
	StatusClosed:      {},
}

// IsValid reports whether s is a known lead status.
func IsValid(s Status) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s Status) bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransition reports whether the edge from → to is in the workflow table.
func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}

// CheckTransition validates the edge from → to, returning an
// InvalidTransition domain error carrying both states when it is not
// allowed.
func CheckTransition(from, to Status) error {
	if !IsValid(to) {
		return domain.NewInvalidTransitionError(string(from), string(to))
	}
	if !CanTransition(from, to) {
		return domain.NewInvalidTransitionError(string(from), string(to))
	}
	return nil
}
