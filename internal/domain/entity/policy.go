package entity

import "fmt"

// DeletePolicy decides what happens to appointments when the patient or
// doctor they reference is deleted.
type DeletePolicy string

const (
	// DeletePolicyCascade removes the dependent appointments.
	DeletePolicyCascade DeletePolicy = "cascade"
	// DeletePolicyRestrict refuses the delete while appointments exist.
	DeletePolicyRestrict DeletePolicy = "restrict"
	// DeletePolicyNullify clears the reference and keeps the appointments.
	// Only valid for optional references (doctor).
	DeletePolicyNullify DeletePolicy = "nullify"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(s); p {
	case DeletePolicyCascade, DeletePolicyRestrict, DeletePolicyNullify:
		return p, nil
	}
	return "", fmt.Errorf("unknown delete policy %q", s)
}

// TransitionPolicy decides which status changes an appointment accepts.
type TransitionPolicy string

const (
	// TransitionPermissive lets any settable status follow any other.
	TransitionPermissive TransitionPolicy = "permissive"
	// TransitionForwardOnly forbids leaving complete or cancelled and
	// moving a confirmed appointment back to scheduled.
	TransitionForwardOnly TransitionPolicy = "forward_only"
)

func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch p := TransitionPolicy(s); p {
	case TransitionPermissive, TransitionForwardOnly:
		return p, nil
	}
	return "", fmt.Errorf("unknown status transition policy %q", s)
}

var forwardTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusComplete, AppointmentStatusCancelled},
	AppointmentStatusScheduled: {AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusComplete, AppointmentStatusCancelled},
	AppointmentStatusAssigned:  {AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusComplete, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusConfirmed, AppointmentStatusComplete, AppointmentStatusCancelled},
	AppointmentStatusComplete:  {AppointmentStatusComplete},
	AppointmentStatusCancelled: {AppointmentStatusCancelled},
}

// Allows reports whether an appointment in from may move to to.
// The target must always be a settable status.
func (p TransitionPolicy) Allows(from, to AppointmentStatus) bool {
	if !to.IsSettable() {
		return false
	}
	if p != TransitionForwardOnly {
		return true
	}
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
