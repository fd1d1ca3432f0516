package laboratorio

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
	var c CostoLaboratorio
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(c.Servicio) == "" || strings.TrimSpace(c.Insumo) == "" {
		utils.RespondError(w, http.StatusBadRequest, "servicio e insumo son obligatorios")
		return
	}
	if c.Valor <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "el valor debe ser mayor que cero")
		return
	}
	if err := h.Repo.Crear(&c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al registrar costo")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, c)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar(r.URL.Query().Get("servicio"))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar costos")
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
		utils.RespondError(w, http.StatusNotFound, "costo no encontrado")
		return
	}
	var payload CostoLaboratorio
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	c.Servicio = payload.Servicio
	c.Insumo = payload.Insumo
	c.Valor = payload.Valor
	c.Descripcion = payload.Descripcion
	if err := h.Repo.Actualizar(c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar costo")
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
		utils.RespondError(w, http.StatusNotFound, "costo no encontrado")
		return
	}
	if err := h.Repo.Eliminar(c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar costo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
