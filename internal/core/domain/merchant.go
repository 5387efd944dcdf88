package domain

import "time"

// Merchant represents a partner merchant whose transactions may earn rewards.
type Merchant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"-"` // Never expose
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Owns reports whether the transaction was made at this merchant.
func (m *Merchant) Owns(tx *Transaction) bool {
	return tx != nil && tx.MerchantID == m.ID
}
