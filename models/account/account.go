package account

import (
	"time"

	"caffind-server/models"
)

// Account is a registered user. Favorites keeps insertion order and
// never contains duplicates; the IDs it holds are not guaranteed to
// exist in the cafe catalog.
type Account struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"passwordHash"`
	Favorites    []string           `json:"favorites"`
	Preferences  models.Preferences `json:"preferences"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// Profile is the API-facing view of an account, without the credential
// hash.
type Profile struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Favorites   []string           `json:"favorites"`
	Preferences models.Preferences `json:"preferences"`
}

// Profile returns the sanitized view of the account.
func (a *Account) Profile() Profile {
	favorites := a.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return Profile{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Favorites:   favorites,
		Preferences: a.Preferences,
	}
}

// HasFavorite reports whether cafeID is already in the favorites list.
func (a *Account) HasFavorite(cafeID string) bool {
	for _, id := range a.Favorites {
		if id == cafeID {
			return true
		}
	}
	return false
}
