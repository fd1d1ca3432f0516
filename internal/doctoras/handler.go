package doctoras

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia las rutas del cuadro de doctoras.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var d Doctora
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(d.Nombre) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	if err := h.Repo.Crear(&d); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe una doctora con ese nombre")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, d)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	sedeID, _ := strconv.Atoi(r.URL.Query().Get("sede"))
	list, err := h.Repo.Listar(uint(sedeID))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar doctoras")
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
	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "doctora no encontrada")
		return
	}
	var payload Doctora
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	d.Nombre = payload.Nombre
	d.Documento = payload.Documento
	d.Telefono = payload.Telefono
	d.Correo = payload.Correo
	d.SedeID = payload.SedeID
	if err := h.Repo.Actualizar(d); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar doctora")
		return
	}
	utils.RespondJSON(w, http.StatusOK, d)
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "doctora no encontrada")
		return
	}
	if err := h.Repo.Eliminar(d); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar doctora")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
