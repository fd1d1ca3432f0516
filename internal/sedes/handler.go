package sedes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

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

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var s Sede
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(s.Nombre) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	if err := h.Repo.Crear(&s); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe una sede con ese nombre")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar sedes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	s, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "sede no encontrada")
		return
	}
	var payload Sede
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	s.Nombre = payload.Nombre
	s.Direccion = payload.Direccion
	s.Telefono = payload.Telefono
	if err := h.Repo.Actualizar(s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar sede")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	s, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "sede no encontrada")
		return
	}
	if err := h.Repo.Eliminar(s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar sede")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
