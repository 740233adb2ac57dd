package domain

import (
	"time"

	"safepath/internal/fare"
)

// Draft is the in-progress booking accumulated across the wizard steps.
// Each setter overwrites only the fields owned by its step; earlier fields
// are never erased by a later step. Distance and fare are derived from the
// two coordinates and are kept consistent with them at all times: they are
// recomputed whenever a coordinate changes and cleared whenever either
// coordinate is missing.
type Draft struct {
	FromAddress string
	ToAddress   string
	FromCoord   *Coordinate
	ToCoord     *Coordinate

	ScheduledAt *time.Time

	PassengerType PassengerType
	Equipment     []string

	DistanceKm *float64
	Fare       *int
}

// SetRoute records the addresses and coordinates chosen in the address step
// and recomputes the derived distance/fare in the same call.
func (d *Draft) SetRoute(fromAddress, toAddress string, from, to *Coordinate) {
	d.FromAddress = fromAddress
	d.ToAddress = toAddress
	d.FromCoord = from
	d.ToCoord = to
	d.recompute()
}

// SetSchedule records the structured pickup time. Formatting for display is
// a presentation concern and never stored here.
func (d *Draft) SetSchedule(at time.Time) {
	t := at
	d.ScheduledAt = &t
}

// SetPassenger records the passenger category and equipment list. A
// non-empty free-text "other" entry is appended to the list.
func (d *Draft) SetPassenger(passengerType PassengerType, equipment []string, other string) {
	d.PassengerType = passengerType
	d.Equipment = append([]string(nil), equipment...)
	if other != "" {
		d.Equipment = append(d.Equipment, other)
	}
}

// HasRoute reports whether both coordinates are resolved.
func (d *Draft) HasRoute() bool {
	return d.FromCoord != nil && d.ToCoord != nil
}

// recompute refreshes the derived fields. With either coordinate missing the
// previous values would be stale, so they are dropped rather than kept.
func (d *Draft) recompute() {
	if !d.HasRoute() {
		d.DistanceKm = nil
		d.Fare = nil
		return
	}

	km, amount := fare.Estimate(d.FromCoord.Lat, d.FromCoord.Lng, d.ToCoord.Lat, d.ToCoord.Lng)
	d.DistanceKm = &km
	d.Fare = &amount
}
