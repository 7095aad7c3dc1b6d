// Package wheel implements the deterministic lead-rotation core: it expands a
// team's sellers into a weighted wheel and maps click counts onto wheel slots
// and contacts with plain modular arithmetic.
//
// The wheel is never persisted. It is rebuilt from the current seller snapshot
// on every redirect, and the number of clicks already recorded for a campaign
// acts as the implicit cursor: slot = clicks mod len(wheel). Because the input
// order is stable (sellers sorted by creation time, then id) the same
// configuration always yields the same layout, in every process, with no
// coordination. Two requests racing on the same count may pick the same slot;
// that is a documented trade-off, and the distribution still converges to the
// configured weights as appends advance the count.
package wheel

import (
	"errors"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

// ErrNoEligibleSellers is returned by Build when no seller survives
// filtering (every seller has weight 0 or no contacts). Callers must treat it
// as "nothing to route to", never attempt a selection.
var ErrNoEligibleSellers = errors.New("no eligible sellers")

// Wheel is the expanded rotation: each eligible seller appears Weight times,
// contiguously, in the input order. Immutable after Build.
type Wheel struct {
	slots []*domain.Seller
}

// Build filters out sellers with weight <= 0 or zero contacts and expands the
// remainder into a wheel. The input order is preserved as the grouping order,
// which is what makes count-mod-length a faithful weighted round robin.
//
// Build does not sort: callers must already present sellers in their stable
// rotation order (creation time ascending, id ascending).
func Build(sellers []domain.Seller) (*Wheel, error) {
	total := 0
	for i := range sellers {
		if eligible(&sellers[i]) {
			total += sellers[i].Weight
		}
	}
	if total == 0 {
		return nil, ErrNoEligibleSellers
	}

	slots := make([]*domain.Seller, 0, total)
	for i := range sellers {
		s := &sellers[i]
		if !eligible(s) {
			continue
		}
		for n := 0; n < s.Weight; n++ {
			slots = append(slots, s)
		}
	}
	return &Wheel{slots: slots}, nil
}

// eligible reports whether a seller may occupy wheel slots. A seller with
// weight 0 is paused; a seller with no contacts has no destination and must
// never be selected.
func eligible(s *domain.Seller) bool {
	return s.Weight > 0 && len(s.Contacts) > 0
}

// Len returns the number of slots (the sum of eligible sellers' weights).
func (w *Wheel) Len() int { return len(w.slots) }

// SellerAt maps a campaign click count onto a seller. Both operands are
// non-negative and Len() >= 1 after Build, so the remainder is always a valid
// index.
func (w *Wheel) SellerAt(count int64) *domain.Seller {
	return w.slots[count%int64(len(w.slots))]
}

// PickContact maps a seller-scoped click count onto one of the seller's
// contacts, cycling in their stored order. The contacts slice must be
// non-empty; Build guarantees that for every seller it can return.
func PickContact(contacts []domain.Contact, count int64) *domain.Contact {
	return &contacts[count%int64(len(contacts))]
}
