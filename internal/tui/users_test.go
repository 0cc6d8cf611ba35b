package tui

import (
	"strings"
	"testing"

	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderUsers(t *testing.T) {
	out := RenderUsers([]models.User{
		{ID: 1, Name: "John", Email: "john@example.com", Created: "2024-01-01"},
		{ID: 12, Name: "Jane", Email: "jane@example.com", Created: "2024-01-01"},
	})

	assert.Contains(t, out, "USERS")
	assert.Contains(t, out, "john@example.com")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Users: 2 total users in database")

	lines := strings.Split(out, "\n")
	var rowWithJohn, rowWithJane string
	for _, l := range lines {
		if strings.Contains(l, "John") {
			rowWithJohn = l
		}
		if strings.Contains(l, "Jane") {
			rowWithJane = l
		}
	}
	// columns are aligned
	assert.Equal(t, strings.Index(rowWithJohn, "│"), strings.Index(rowWithJane, "│"))
}

func TestRenderUsers_Empty(t *testing.T) {
	out := RenderUsers(nil)

	assert.Contains(t, out, "  -\n")
	assert.Contains(t, out, "Users: 0 total users in database")
	assert.NotContains(t, out, "Email")
}

func TestRenderUser(t *testing.T) {
	out := RenderUser(models.User{ID: 7, Name: "Alice", Created: "2024-01-01"})

	assert.Contains(t, out, "ID: 7")
	assert.Contains(t, out, "Name: Alice")
	assert.Contains(t, out, "Email: -")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "ключ...", fitText("ключевой", 7))
	assert.Equal(t, "anything", fitText("anything", 0))
}

func TestNotice(t *testing.T) {
	out := Notice("User not found")
	assert.Contains(t, out, "User not found")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
