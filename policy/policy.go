// Package policy centralizes role and ownership checks so handlers do not
// repeat ad-hoc role comparisons.
package policy

import "errors"

// ErrForbidden is returned when the principal may not perform the action.
var ErrForbidden = errors.New("forbidden")

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// Action is what the principal wants to do with a resource.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Resource identifies a stored entity by kind and its related parties.
type Resource struct {
	Kind      string // "appointment", "record", "lab", "prescription", "contact", "schedule", "reminder"
	PatientID string
	DoctorID  string
}

// Clinical resource kinds are written by doctors and read by the patient they
// belong to plus the authoring doctor.
var clinicalKinds = map[string]bool{
	"record":       true,
	"lab":          true,
	"prescription": true,
}

// Authorize decides whether the principal may perform the action on the
// resource. It returns nil on allow and ErrForbidden on deny.
func Authorize(p Principal, res Resource, action Action) error {
	switch {
	case clinicalKinds[res.Kind]:
		return authorizeClinical(p, res, action)
	case res.Kind == "appointment":
		// Either party may read; either party may act on it (status rules
		// are enforced by the appointment service).
		if p.ID == res.PatientID || p.ID == res.DoctorID {
			return nil
		}
		return ErrForbidden
	case res.Kind == "schedule":
		// Templates are world-readable (slot queries need them) but only the
		// owning doctor edits.
		if action == ActionRead {
			return nil
		}
		if p.Role == "doctor" && p.ID == res.DoctorID {
			return nil
		}
		return ErrForbidden
	case res.Kind == "contact" || res.Kind == "reminder":
		// Strictly owner-private.
		if p.ID == res.PatientID {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}

func authorizeClinical(p Principal, res Resource, action Action) error {
	if action == ActionWrite {
		if p.Role != "doctor" {
			return ErrForbidden
		}
		// A doctor writes under their own identity.
		if res.DoctorID != "" && res.DoctorID != p.ID {
			return ErrForbidden
		}
		return nil
	}
	if p.ID == res.PatientID || p.ID == res.DoctorID {
		return nil
	}
	return ErrForbidden
}
