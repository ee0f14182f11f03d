// Package search filters a loaded page of users by a free-text term.
package search

import (
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Filter returns the users whose first name, last name or email contains
// term, ignoring case. A blank term returns users unchanged. The input is
// never modified.
func Filter(users []models.User, term string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return users
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if matches(u, term) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u models.User, term string) bool {
	for _, field := range []string{u.FirstName, u.LastName, u.Email} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
