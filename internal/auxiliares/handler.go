package auxiliares

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
	var a Auxiliar
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(a.Nombre) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	if err := h.Repo.Crear(&a); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe una auxiliar con ese nombre")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, a)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	sedeID, _ := strconv.Atoi(r.URL.Query().Get("sede"))
	list, err := h.Repo.Listar(uint(sedeID))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar auxiliares")
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
	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "auxiliar no encontrada")
		return
	}
	var payload Auxiliar
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	a.Nombre = payload.Nombre
	a.Documento = payload.Documento
	a.Telefono = payload.Telefono
	a.SedeID = payload.SedeID
	if err := h.Repo.Actualizar(a); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar auxiliar")
		return
	}
	utils.RespondJSON(w, http.StatusOK, a)
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "auxiliar no encontrada")
		return
	}
	if err := h.Repo.Eliminar(a); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar auxiliar")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
