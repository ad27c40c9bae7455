// Package reconcile decides whether a fetched reading replaces the value on screen.
//
// The policy is pure. Callers are responsible for not consulting it while a
// manual override is active.
package reconcile

import "github.com/aalvaropc/tempdial/internal/domain"

// Apply returns the value that should be displayed after observing incoming.
// An absent reading, or one equal to the current value, leaves current as is.
func Apply(current domain.Temperature, incoming domain.Reading) domain.Temperature {
	if Changed(current, incoming) {
		return domain.Celsius(incoming.Value)
	}
	return current
}

// Changed reports whether Apply would signal an update.
func Changed(current domain.Temperature, incoming domain.Reading) bool {
	if !incoming.Present {
		return false
	}
	return !current.Equal(domain.Celsius(incoming.Value))
}
