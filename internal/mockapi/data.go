package mockapi

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

var seedNames = [][2]string{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// SeedUsers returns the fixed dataset served by the mock API. The slice is
// freshly built on every call.
func SeedUsers() []models.User {
	users := make([]models.User, 0, len(seedNames))
	for i, n := range seedNames {
		id := i + 1
		users = append(users, models.User{
			ID: models.ID(fmt.Sprint(id)),
			UserFields: models.UserFields{
				FirstName: n[0],
				LastName:  n[1],
				Email:     strings.ToLower(n[0]+"."+n[1]) + "@reqres.in",
				AvatarURL: fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
			},
		})
	}
	return users
}

// pageOf slices users into the requested page. Pages past the end are empty.
func pageOf(users []models.User, page, perPage int) models.Page {
	totalPages := (len(users) + perPage - 1) / perPage

	start := (page - 1) * perPage
	data := []models.User{}
	if start < len(users) {
		end := min(start+perPage, len(users))
		data = append(data, users[start:end]...)
	}

	return models.Page{
		Page:       page,
		PerPage:    perPage,
		Total:      len(users),
		TotalPages: totalPages,
		Data:       data,
	}
}
