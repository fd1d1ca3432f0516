package caja

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	sedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "sede inválida")
		return
	}
	c, err := h.Repo.Obtener(uint(sedeID))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al consultar cuadre")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}

type fijarRequest struct {
	Base float64 `json:"base"`
}

func (h *Handler) Fijar(w http.ResponseWriter, r *http.Request) {
	sedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "sede inválida")
		return
	}
	var req fijarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Base < 0 {
		utils.RespondError(w, http.StatusBadRequest, "la base no puede ser negativa")
		return
	}
	c, err := h.Repo.Fijar(uint(sedeID), req.Base)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al fijar la base")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}

type movimientoRequest struct {
	Delta float64 `json:"delta"`
}

// Movimiento aplica un delta al efectivo de la sede. El cliente envía el
// incremento, nunca el total: la suma ocurre en el banco de datos.
func (h *Handler) Movimiento(w http.ResponseWriter, r *http.Request) {
	sedeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "sede inválida")
		return
	}
	var req movimientoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Delta == 0 {
		utils.RespondError(w, http.StatusBadRequest, "el delta no puede ser cero")
		return
	}
	if err := h.Repo.AplicarDelta(uint(sedeID), req.Delta); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al aplicar movimiento")
		return
	}
	c, err := h.Repo.Obtener(uint(sedeID))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al consultar cuadre")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}
