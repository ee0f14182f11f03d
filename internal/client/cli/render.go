package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	localStyle  = cellStyle.Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// renderUsers draws users as a table. Rows that exist only on this client
// are marked with '*' in the first column.
func renderUsers(users []models.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		mark := ""
		if u.Origin == models.OriginLocal {
			mark = "*"
		}
		rows = append(rows, []string{mark, u.ID.String(), u.FullName(), u.Email, u.AvatarURL})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "ID", "Name", "Email", "Avatar").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(users) && users[row].Origin == models.OriginLocal:
				return localStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}

// renderPage draws the loaded page, its position and the last fetch error.
func renderPage(st services.PageState) string {
	var b strings.Builder

	if len(st.Records) == 0 {
		b.WriteString("No users on this page.\n")
	} else {
		b.WriteString(renderUsers(st.Records))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("page %d of %d, %d users total", st.Page, st.TotalPages, st.Total)))

	if st.Status == services.StatusError && st.LastError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("last fetch failed: " + st.LastError))
	}
	return b.String()
}
