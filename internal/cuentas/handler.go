package cuentas

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
	var c Cuenta
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(c.Nombre) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	if err := h.Repo.Crear(&c); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe una cuenta con ese nombre")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, c)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar cuentas")
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
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "cuenta no encontrada")
		return
	}
	var payload Cuenta
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	c.Nombre = payload.Nombre
	c.Banco = payload.Banco
	c.Numero = payload.Numero
	c.Tipo = payload.Tipo
	if err := h.Repo.Actualizar(c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar cuenta")
		return
	}
	utils.RespondJSON(w, http.StatusOK, c)
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "cuenta no encontrada")
		return
	}
	if err := h.Repo.Eliminar(c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar cuenta")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
