// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/charmbracelet/lipgloss"
)

// maxCellWidth caps name and email columns; longer values are cut with "...".
const maxCellWidth = 40

var userColumns = []string{"ID", "Name", "Email", "Created"}

// RenderUsers lays users out as a table framed by RenderPage. The footer
// carries the total count.
func RenderUsers(users []models.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			fitText(valueOrDash(u.Name), maxCellWidth),
			fitText(valueOrDash(u.Email), maxCellWidth),
			valueOrDash(u.Created),
		})
	}

	body := ""
	if len(rows) > 0 {
		body = renderTable(userColumns, rows)
	}

	return RenderPage("USERS", body, fmt.Sprintf("Users: %d total users in database", len(users)))
}

// RenderUser shows a single record as label/value lines.
func RenderUser(user models.User) string {
	var b strings.Builder

	b.WriteString("ID: ")
	b.WriteString(strconv.FormatInt(user.ID, 10))
	b.WriteString("\nName: ")
	b.WriteString(valueOrDash(user.Name))
	b.WriteString("\nEmail: ")
	b.WriteString(valueOrDash(user.Email))
	b.WriteString("\nCreated: ")
	b.WriteString(valueOrDash(user.Created))

	return RenderPage("USER", b.String(), "")
}

func renderTable(columns []string, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = pad(c, widths[i])
	}
	b.WriteString(headerStyle.Render(strings.Join(header, " │ ")))
	b.WriteString("\n")

	separators := make([]string, len(columns))
	for i, w := range widths {
		separators[i] = strings.Repeat("─", w)
	}
	b.WriteString(strings.Join(separators, "─┼─"))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(strings.Join(cells, " │ "), " "))
	}

	return b.String()
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
