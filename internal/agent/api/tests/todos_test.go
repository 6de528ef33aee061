package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"
)

func TestClient_CreateTodo_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		// токен как есть, без схемы Bearer
		require.Equal(t, "token-1", r.Header.Get("Authorization"))

		var req api.CreateTodoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "buy milk", req.Title)
		require.Equal(t, "active", req.Status)
		require.Equal(t, "2 liters", req.Description)

		resp := api.MessageResponse{}
		resp.Items.Message = "Todo created successfully"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.CreateTodo("buy milk", "active", "2 liters", "token-1")
	require.NoError(t, err)
	require.Equal(t, "Todo created successfully", resp.Items.Message)
}

func TestClient_CreateTodo_MissingTitle_ReturnsMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":true,"message":"Title is required"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.CreateTodo("", "active", "", "token-1")
	require.Error(t, err)
	require.Equal(t, "Title is required", err.Error())
}

func TestClient_ListTodos_Success(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "token-1", r.Header.Get("Authorization"))

		resp := api.ListTodosResponse{}
		resp.Items.Data = []models.Todo{
			{ID: first, Title: "first", Status: "active"},
			{ID: second, Title: "second", Status: "inactive"},
		}
		resp.Items.Message = "Todos fetched successfully"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.ListTodos("token-1")
	require.NoError(t, err)
	require.Len(t, resp.Items.Data, 2)
	require.Equal(t, first, resp.Items.Data[0].ID)
	require.Equal(t, "second", resp.Items.Data[1].Title)
}

func TestClient_UpdateTodo_SendsStatusToIDPath(t *testing.T) {
	id := uuid.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/todos/"+id.String(), func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "token-1", r.Header.Get("Authorization"))

		var req api.UpdateTodoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "inactive", req.Status)

		resp := api.TodoResponse{}
		resp.Items.Data = models.Todo{ID: id, Title: "first", Status: "inactive"}
		resp.Items.Message = "Todo updated successfully"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.UpdateTodo(id.String(), "inactive", "token-1")
	require.NoError(t, err)
	require.Equal(t, "inactive", resp.Items.Data.Status)
	require.Equal(t, "Todo updated successfully", resp.Items.Message)
}

func TestClient_DeleteTodo_Success(t *testing.T) {
	id := uuid.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/todos/"+id.String(), func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "token-1", r.Header.Get("Authorization"))

		resp := api.MessageResponse{}
		resp.Items.Message = "Todo deleted successfully"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.DeleteTodo(id.String(), "token-1")
	require.NoError(t, err)
	require.Equal(t, "Todo deleted successfully", resp.Items.Message)
}
