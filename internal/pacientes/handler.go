package pacientes

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
	var p Paciente
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(p.Nombre) == "" || strings.TrimSpace(p.Documento) == "" {
		utils.RespondError(w, http.StatusBadRequest, "nombre y documento son obligatorios")
		return
	}
	if err := h.Repo.Crear(&p); err != nil {
		utils.RespondError(w, http.StatusConflict, "ya existe un paciente con ese documento")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, p)
}

// Buscar responde la búsqueda por subcadena de nombre con el crédito
// vigente de cada paciente.
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	texto := strings.TrimSpace(r.URL.Query().Get("nombre"))
	if texto == "" {
		utils.RespondError(w, http.StatusBadRequest, "el parámetro nombre es obligatorio")
		return
	}
	list, err := h.Repo.BuscarPorNombre(texto)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al buscar pacientes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

type abonoRequest struct {
	Valor float64 `json:"valor"`
}

// Abonar agrega crédito al paciente.
func (h *Handler) Abonar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	var req abonoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Valor <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "el valor debe ser mayor que cero")
		return
	}
	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		utils.RespondError(w, http.StatusNotFound, "paciente no encontrado")
		return
	}
	if err := h.Repo.AbonarCredito(uint(id), req.Valor); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al abonar crédito")
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al cargar paciente")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}
