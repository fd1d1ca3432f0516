package porcentajes

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

// Obtener responde el valor numérico de un nivel: {"id": n, "valor": f}.
func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "porcentaje no encontrado")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":    p.ID,
		"valor": p.Valor,
	})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar porcentajes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var p Porcentaje
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if p.Valor < 0 || p.Valor > 1 {
		utils.RespondError(w, http.StatusBadRequest, "el valor debe ser una fracción entre 0 y 1")
		return
	}
	if err := h.Repo.Crear(&p); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al crear porcentaje")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, p)
}

func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "porcentaje no encontrado")
		return
	}
	var payload Porcentaje
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if payload.Valor < 0 || payload.Valor > 1 {
		utils.RespondError(w, http.StatusBadRequest, "el valor debe ser una fracción entre 0 y 1")
		return
	}
	p.Nombre = payload.Nombre
	p.Valor = payload.Valor
	if err := h.Repo.Actualizar(p); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar porcentaje")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}
