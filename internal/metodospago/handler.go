package metodospago

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
	var m MetodoPago
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(m.Nombre) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	if err := h.Repo.Crear(&m); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe un método con ese nombre")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, m)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar métodos de pago")
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
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "método no encontrado")
		return
	}
	var payload MetodoPago
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(payload.Nombre) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	m.Nombre = payload.Nombre
	if err := h.Repo.Actualizar(m); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe un método con ese nombre")
		return
	}
	utils.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "método no encontrado")
		return
	}
	if err := h.Repo.Eliminar(m); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar método")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
