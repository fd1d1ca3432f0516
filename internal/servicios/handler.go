package servicios

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia las rutas de los dos catálogos de servicios.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type servicioPayload struct {
	Nombre      string  `json:"nombre"`
	Valor       float64 `json:"valor"`
	Sesiones    int     `json:"sesiones"`
	Descripcion string  `json:"descripcion"`
}

func validarPayload(p servicioPayload) error {
	if strings.TrimSpace(p.Nombre) == "" {
		return errors.New("el nombre es obligatorio")
	}
	if p.Valor <= 0 {
		return errors.New("el valor debe ser mayor que cero")
	}
	if p.Sesiones <= 0 {
		return errors.New("las sesiones deben ser al menos una")
	}
	return nil
}

// --- Catálogo general ---

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var p servicioPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if err := validarPayload(p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.Repo.ExistePorNombre(strings.TrimSpace(p.Nombre)) {
		utils.RespondError(w, http.StatusConflict, "ya existe un servicio con ese nombre")
		return
	}
	s := Servicio{
		Nombre:      strings.TrimSpace(p.Nombre),
		Valor:       p.Valor,
		Sesiones:    p.Sesiones,
		Descripcion: p.Descripcion,
	}
	if err := h.Repo.Crear(&s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al crear servicio")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.Listar()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar servicios")
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
		utils.RespondError(w, http.StatusNotFound, "servicio no encontrado")
		return
	}
	var p servicioPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if err := validarPayload(p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.Nombre = strings.TrimSpace(p.Nombre)
	s.Valor = p.Valor
	s.Sesiones = p.Sesiones
	s.Descripcion = p.Descripcion
	if err := h.Repo.Actualizar(s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar servicio")
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
		utils.RespondError(w, http.StatusNotFound, "servicio no encontrado")
		return
	}
	if err := h.Repo.Eliminar(s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar servicio")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Catálogo Estadio ---

func (h *Handler) CrearEstadio(w http.ResponseWriter, r *http.Request) {
	var p servicioPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if err := validarPayload(p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.Repo.ExisteEstadioPorNombre(strings.TrimSpace(p.Nombre)) {
		utils.RespondError(w, http.StatusConflict, "ya existe un servicio con ese nombre")
		return
	}
	s := ServicioEstadio{
		Nombre:      strings.TrimSpace(p.Nombre),
		Valor:       p.Valor,
		Sesiones:    p.Sesiones,
		Descripcion: p.Descripcion,
	}
	if err := h.Repo.CrearEstadio(&s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al crear servicio")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s)
}

func (h *Handler) ListarEstadio(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarEstadio()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar servicios")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) ActualizarEstadio(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	s, err := h.Repo.BuscarEstadioPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "servicio no encontrado")
		return
	}
	var p servicioPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if err := validarPayload(p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.Nombre = strings.TrimSpace(p.Nombre)
	s.Valor = p.Valor
	s.Sesiones = p.Sesiones
	s.Descripcion = p.Descripcion
	if err := h.Repo.ActualizarEstadio(s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar servicio")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) EliminarEstadio(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	s, err := h.Repo.BuscarEstadioPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "servicio no encontrado")
		return
	}
	if err := h.Repo.EliminarEstadio(s); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar servicio")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
