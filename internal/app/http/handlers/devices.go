package handlers

import "net/http"

type deviceRequest struct {
	Label string `json:"label"`
}

func (h *Handlers) ListDeviceTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, workspace(r).State().DeviceTypes)
}

func (h *Handlers) SelectDevice(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ws := workspace(r)
	writeMutation(w, ws, ws.SelectDevice(req.Label))
}

func (h *Handlers) CommitDevice(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ws := workspace(r)
	writeMutation(w, ws, ws.CommitDevice(req.Label))
}
