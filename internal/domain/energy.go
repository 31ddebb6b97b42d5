package domain

import "time"

const DefaultMaxEnergy = 5

type Energy struct {
	Current   int       `json:"current"`
	Max       int       `json:"max"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Segments renders the battery: one bool per slot, filled slots first.
func (e Energy) Segments() []bool {
	segs := make([]bool, e.Max)
	for i := range segs {
		segs[i] = i < e.Current
	}
	return segs
}

func (e Energy) Empty() bool {
	return e.Current <= 0
}
