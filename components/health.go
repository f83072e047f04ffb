package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount, saturating at zero.
func (h *HealthData) Damage(amount uint32) {
	if uint64(amount) >= uint64(max(h.Current, 0)) {
		h.Current = 0
		return
	}
	h.Current -= int(amount)
}

// Heal adds amount, clamped to Max.
func (h *HealthData) Heal(amount uint32) {
	if uint64(amount) >= uint64(max(h.Max-h.Current, 0)) {
		h.Current = h.Max
		return
	}
	h.Current += int(amount)
}

func (h *HealthData) KnockedOut() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
