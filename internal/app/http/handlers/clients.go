package handlers

import (
	"net/http"
)

type selectRequest struct {
	ID string `json:"id"`
}

type newClientRequest struct {
	Name string `json:"name"`
}

type newContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, workspace(r).State().Clients)
}

func (h *Handlers) SelectClient(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ws := workspace(r)
	ws.SelectClient(req.ID)
	writeMutation(w, ws, true)
}

func (h *Handlers) CommitClient(w http.ResponseWriter, r *http.Request) {
	var req newClientRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ws := workspace(r)
	writeMutation(w, ws, ws.CommitClient(req.Name))
}

func (h *Handlers) SelectContact(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ws := workspace(r)
	writeMutation(w, ws, ws.SelectContact(req.ID))
}

func (h *Handlers) CommitContact(w http.ResponseWriter, r *http.Request) {
	var req newContactRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ws := workspace(r)
	writeMutation(w, ws, ws.CommitContact(req.Name, req.Phone, req.Email))
}
