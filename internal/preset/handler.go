package preset

import (
	"encoding/json"
	"net/http"

	egg "Ovoid/internal/calc/egg"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store *Store
}

type Entry struct {
	Species string    `json:"species"`
	Egg     egg.Input `json:"egg"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out := make([]Entry, 0, len(h.Store.Names()))
	for _, name := range h.Store.Names() {
		in, _ := h.Store.Get(name)
		out = append(out, Entry{Species: name, Egg: in})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	species := mux.Vars(r)["species"]
	in, ok := h.Store.Get(species)
	if !ok {
		http.Error(w, "Unknown species", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Entry{Species: species, Egg: in})
}
