package component

import "math"

// Health is shared by anything that can be hurt. Once Dead is set it never
// clears.
type Health struct {
	Current float64
	Max     float64
	Dead    bool
}

// Apply subtracts amount and reports whether this call killed the owner.
// Damage to the dead is ignored.
func (h *Health) Apply(amount float64) bool {
	if h == nil || h.Dead || amount <= 0 || math.IsNaN(amount) {
		return false
	}
	h.Current = math.Max(0, h.Current-amount)
	if h.Current == 0 {
		h.Dead = true
		return true
	}
	return false
}

var HealthComponent = NewComponent[Health]("health")
