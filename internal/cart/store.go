package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one selected variant with its price snapshotted at add time.
type Item struct {
	VariantID int64           `json:"variant_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int64           `json:"quantity"`
}

// State is what a Persister loads and saves: the line items plus the referral
// code captured from the ?ref= parameter.
type State struct {
	Items        []Item `json:"items"`
	ReferralCode string `json:"referral_code"`
}

// Persister loads the state on init and saves it after every mutation.
type Persister interface {
	Load() (State, error)
	Save(State) error
}

// Store is the session cart: items unique by variant id, mutated through an
// explicit API and written through to its Persister.
type Store struct {
	mu sync.Mutex

	items        []Item
	referralCode string
	persister    Persister
}

// NewStore loads any persisted state. A load failure starts an empty cart
// rather than blocking the session.
func NewStore(p Persister) *Store {
	s := &Store{persister: p}
	if p != nil {
		if st, err := p.Load(); err == nil {
			s.items = st.Items
			s.referralCode = st.ReferralCode
		}
	}
	return s
}

// Add inserts the variant or, if already present, increments its quantity.
// The unit price of an existing line is kept: it was snapshotted at first add.
func (s *Store) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == item.VariantID {
			s.items[i].Quantity += item.Quantity
			s.saveLocked()
			return
		}
	}
	s.items = append(s.items, item)
	s.saveLocked()
}

func (s *Store) Remove(variantID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.saveLocked()
			return
		}
	}
}

// SetQuantity updates a line; qty <= 0 removes it.
func (s *Store) SetQuantity(variantID int64, qty int64) {
	if qty <= 0 {
		s.Remove(variantID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items[i].Quantity = qty
			s.saveLocked()
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.saveLocked()
}

func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

func (s *Store) SetReferralCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.referralCode = code
	s.saveLocked()
}

func (s *Store) ReferralCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.referralCode
}

func (s *Store) saveLocked() {
	if s.persister == nil {
		return
	}
	// Save failures do not fail the mutation; the in-memory cart stays
	// authoritative for the session.
	_ = s.persister.Save(State{Items: s.items, ReferralCode: s.referralCode})
}
