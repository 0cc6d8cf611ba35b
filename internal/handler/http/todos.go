package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/utils"
	"github.com/Infogain-GenAI/sample-app1/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	todos, err := h.services.TodoService.ListTodos(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTodos").Msg("error listing todos")
		writeError(w, err)
		return
	}

	if todos == nil {
		todos = []models.Todo{}
	}
	utils.WriteJSON(w, todos, http.StatusOK)
}

// createTodo reads the title from the "title" query parameter and falls back
// to a JSON body.
func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	title := r.URL.Query().Get("title")
	if title == "" && r.Body != nil {
		var body models.Todo
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Err(err).Str("func", "*Handler.createTodo").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		title = body.Title
	}

	if title == "" {
		writeError(w, ErrTitleRequired)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(r.Context(), title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("error creating todo")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}
