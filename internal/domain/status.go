package domain

import "strings"

// TripStatus is the closed set of trip lifecycle states.
type TripStatus string

const (
	TripPending    TripStatus = "Pending"
	TripAccepted   TripStatus = "Accepted"
	TripInProgress TripStatus = "In_Progress"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// tripTransitions is the only source of truth for legal lifecycle edges.
// Completed and Cancelled are terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripPending:    {TripAccepted, TripCancelled},
	TripAccepted:   {TripInProgress, TripCompleted, TripCancelled},
	TripInProgress: {TripCompleted, TripCancelled},
	TripCompleted:  {},
	TripCancelled:  {},
}

// CanTransition reports whether a trip may move from one status to another.
func CanTransition(from, to TripStatus) bool {
	for _, next := range tripTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func (s TripStatus) IsTerminal() bool {
	return len(tripTransitions[s]) == 0 && s.Valid()
}

func (s TripStatus) Valid() bool {
	_, ok := tripTransitions[s]
	return ok
}

// ActiveTripStatuses are the states in which a trip holds its driver and
// vehicle; the availability queries exclude on this set.
func ActiveTripStatuses() []TripStatus {
	return []TripStatus{TripAccepted, TripInProgress}
}

func ParseTripStatus(s string) (TripStatus, bool) {
	st := TripStatus(strings.TrimSpace(s))
	return st, st.Valid()
}

type DriverStatus string

const (
	DriverActive    DriverStatus = "Active"
	DriverInactive  DriverStatus = "Inactive"
	DriverSuspended DriverStatus = "Suspended"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverActive, DriverInactive, DriverSuspended:
		return true
	}
	return false
}

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "Available"
	VehicleInUse       VehicleStatus = "In_Use"
	VehicleMaintenance VehicleStatus = "Maintenance"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleMaintenance:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type PaymentMode string

const (
	ModeCash       PaymentMode = "Cash"
	ModeCard       PaymentMode = "Card"
	ModeUPI        PaymentMode = "UPI"
	ModeWallet     PaymentMode = "Wallet"
	ModeNetBanking PaymentMode = "Net_Banking"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case ModeCash, ModeCard, ModeUPI, ModeWallet, ModeNetBanking:
		return true
	}
	return false
}
