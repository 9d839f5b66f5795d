package flow

import "github.com/piresc/bookingflow/internal/pkg/models"

type guardKey struct {
	role   models.Role
	status models.BookingStatus
}

// guardTable maps (role, status) to the candidate transitions in table
// order. Flag predicates are applied on top by AllowedActions.
var guardTable = func() map[guardKey][]Transition {
	m := make(map[guardKey][]Transition)
	for _, t := range Transitions {
		for _, from := range t.From {
			k := guardKey{role: t.Role, status: from}
			m[k] = append(m[k], t)
		}
	}
	return m
}()

// AllowedActions returns the actions role may invoke on b right now
func AllowedActions(role models.Role, b *models.Booking) []Action {
	candidates := guardTable[guardKey{role: role, status: b.Status}]
	actions := make([]Action, 0, len(candidates))
	for _, t := range candidates {
		if flagsAllow(t, b) {
			actions = append(actions, t.Action)
		}
	}
	return actions
}

// Allowed reports whether role may invoke action on b and returns its transition
func Allowed(role models.Role, b *models.Booking, action Action) (Transition, bool) {
	for _, t := range guardTable[guardKey{role: role, status: b.Status}] {
		if t.Action == action && flagsAllow(t, b) {
			return t, true
		}
	}
	return Transition{}, false
}

func flagsAllow(t Transition, b *models.Booking) bool {
	if t.RequiresDeposit && !b.DepositPaid {
		return false
	}
	return true
}
