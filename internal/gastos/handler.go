package gastos

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clinicasmiley/api-admin/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type crearGastoRequest struct {
	Concepto    string  `json:"concepto"`
	Proveedor   string  `json:"proveedor"`
	Tipo        string  `json:"tipo"`
	Valor       float64 `json:"valor"`
	Fecha       string  `json:"fecha"`
	Responsable string  `json:"responsable"`
	Comentario  string  `json:"comentario"`
	SedeID      uint    `json:"sedeId"`
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearGastoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(req.Concepto) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el concepto es obligatorio")
		return
	}
	if req.Valor <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "el valor debe ser mayor que cero")
		return
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "fecha inválida (formato 2006-01-02)")
		return
	}

	g := Gasto{
		Concepto:    strings.TrimSpace(req.Concepto),
		Proveedor:   req.Proveedor,
		Tipo:        req.Tipo,
		Valor:       req.Valor,
		Fecha:       fecha,
		Responsable: req.Responsable,
		Comentario:  req.Comentario,
		SedeID:      req.SedeID,
	}
	if err := h.Repo.Crear(&g); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al registrar gasto")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, g)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	f := Filtros{}
	if v, err := strconv.Atoi(r.URL.Query().Get("sede")); err == nil {
		f.SedeID = uint(v)
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("desde")); err == nil {
		f.Desde = &t
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("hasta")); err == nil {
		f.Hasta = &t
	}
	list, err := h.Repo.Listar(f)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar gastos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}
