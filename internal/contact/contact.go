// Package contact stores phone numbers users have shared with the bot.
package contact

import "goldapple-bot/internal/logger"

type Contact struct {
	UserID int64  `json:"user_id"`
	Phone  string `json:"phone"`
}

type Repository interface {
	LoadAll() ([]Contact, error)
	Upsert(c Contact) error
}

type Registry struct {
	repo     Repository
	contacts map[int64]string
}

func NewRegistry(repo Repository) *Registry {
	r := &Registry{repo: repo, contacts: make(map[int64]string)}
	if repo != nil {
		cs, err := repo.LoadAll()
		if err != nil {
			logger.Errorf("failed to load contacts, starting empty: %v", err)
		}
		for _, c := range cs {
			r.contacts[c.UserID] = c.Phone
		}
	}
	return r
}

// Set records the user's phone. Only the first shared contact is kept; the
// return value reports whether anything was stored.
func (r *Registry) Set(userID int64, phone string) bool {
	if _, ok := r.contacts[userID]; ok {
		return false
	}
	r.contacts[userID] = phone
	if r.repo != nil {
		if err := r.repo.Upsert(Contact{UserID: userID, Phone: phone}); err != nil {
			// keep the in-memory entry, persistence is best-effort
			logger.Errorf("failed to persist contact for %d: %v", userID, err)
		}
	}
	return true
}

// Get returns the stored phone or "".
func (r *Registry) Get(userID int64) string {
	return r.contacts[userID]
}
