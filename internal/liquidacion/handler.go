package liquidacion

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicasmiley/api-admin/internal/laboratorio"
	"github.com/clinicasmiley/api-admin/internal/porcentajes"
	"github.com/clinicasmiley/api-admin/internal/registros"
	"github.com/clinicasmiley/api-admin/internal/servicios"
	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia la liquidación de comisiones.
type Handler struct {
	DB          *gorm.DB
	Repo        *Repository
	Registros   *registros.Repository
	Servicios   *servicios.Repository
	Laboratorio *laboratorio.Repository
	Porcentajes *porcentajes.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repo:        NewRepository(db),
		Registros:   registros.NewRepository(db),
		Servicios:   servicios.NewRepository(db),
		Laboratorio: laboratorio.NewRepository(db),
		Porcentajes: porcentajes.NewRepository(db),
	}
}

type crearLiquidacionRequest struct {
	Profesional string `json:"profesional"`
	EsAuxiliar  bool   `json:"esAuxiliar"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	RegistroIDs []uint `json:"registroIds"`
	// Estadio liquida contra el catálogo de esa sede.
	Estadio bool `json:"estadio"`
}

// calcularLote agrupa los registros y liquida los grupos completos; las
// claves de los grupos que aún no se pueden liquidar vuelven como
// pendientes.
func (h *Handler) calcularLote(req crearLiquidacionRequest) ([]Detalle, []string, float64, error) {
	regs, err := h.Registros.BuscarPorIDs(req.RegistroIDs)
	if err != nil {
		return nil, nil, 0, err
	}

	var catalogo map[string]servicios.Servicio
	if req.Estadio {
		catalogo, err = h.Servicios.MapaPreciosEstadio()
	} else {
		catalogo, err = h.Servicios.MapaPrecios()
	}
	if err != nil {
		return nil, nil, 0, err
	}
	costosLab, err := h.Laboratorio.SumaPorServicio()
	if err != nil {
		return nil, nil, 0, err
	}

	detalles, pendientes, total := LiquidarGrupos(
		AgruparRegistros(regs),
		catalogo,
		costosLab,
		req.EsAuxiliar,
		h.Porcentajes.ValorPorID,
	)
	return detalles, pendientes, total, nil
}

// Previa computa el desglose sin persistir nada.
func (h *Handler) Previa(w http.ResponseWriter, r *http.Request) {
	var req crearLiquidacionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if len(req.RegistroIDs) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "la lista de registros está vacía")
		return
	}
	detalles, pendientes, total, err := h.calcularLote(req)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al calcular la liquidación")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"detalles":   detalles,
		"pendientes": pendientes,
		"total":      total,
	})
}

// Crear persiste el lote y saca los registros del pozo de pendientes en
// una sola transacción: o queda todo el lote registrado o nada cambia.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearLiquidacionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Profesional == "" {
		utils.RespondError(w, http.StatusBadRequest, "el profesional es obligatorio")
		return
	}
	if len(req.RegistroIDs) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "la lista de registros está vacía")
		return
	}
	fechaInicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "fecha de inicio inválida (formato 2006-01-02)")
		return
	}
	fechaFin, err := time.Parse("2006-01-02", req.FechaFin)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "fecha de fin inválida (formato 2006-01-02)")
		return
	}

	detalles, _, total, err := h.calcularLote(req)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al calcular la liquidación")
		return
	}
	if len(detalles) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "no hay grupos completos para liquidar")
		return
	}

	lote, ids := NuevoLote(
		uuid.NewString(),
		req.Profesional,
		req.EsAuxiliar,
		fechaInicio,
		fechaFin,
		time.Now(),
		total,
		detalles,
	)

	tx := h.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(w, http.StatusInternalServerError, "no fue posible iniciar la transacción")
		return
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			utils.RespondError(w, http.StatusInternalServerError, "falla interna")
		}
	}()

	if err := Crear(tx, &lote); err != nil {
		_ = tx.Rollback()
		utils.RespondError(w, http.StatusInternalServerError, "error al registrar la liquidación")
		return
	}
	if err := registros.MarcarLiquidados(tx, ids); err != nil {
		_ = tx.Rollback()
		utils.RespondError(w, http.StatusInternalServerError, "error al cerrar los registros")
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespondError(w, http.StatusInternalServerError, "error al confirmar la transacción")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, lote)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var desde, hasta *time.Time
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("desde")); err == nil {
		desde = &t
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("hasta")); err == nil {
		hasta = &t
	}
	list, err := h.Repo.Listar(r.URL.Query().Get("profesional"), desde, hasta)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar liquidaciones")
		return
	}
	utils.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	l, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "liquidación no encontrada")
		return
	}
	utils.RespondJSON(w, http.StatusOK, l)
}
