package export

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/clinicasmiley/api-admin/internal/gastos"
	"github.com/clinicasmiley/api-admin/internal/liquidacion"
	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler produce los reportes en planilla.
type Handler struct {
	Liquidaciones *liquidacion.Repository
	Gastos        *gastos.Repository
	Log           zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{
		Liquidaciones: liquidacion.NewRepository(db),
		Gastos:        gastos.NewRepository(db),
		Log:           log,
	}
}

type exportarLiquidacionesRequest struct {
	Profesional string `json:"profesional"`
	Desde       string `json:"desde"`
	Hasta       string `json:"hasta"`
}

func (h *Handler) ExportarLiquidaciones(w http.ResponseWriter, r *http.Request) {
	var req exportarLiquidacionesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	var desde, hasta *time.Time
	if t, err := time.Parse("2006-01-02", req.Desde); err == nil {
		desde = &t
	}
	if t, err := time.Parse("2006-01-02", req.Hasta); err == nil {
		hasta = &t
	}

	lotes, err := h.Liquidaciones.Listar(req.Profesional, desde, hasta)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al consultar liquidaciones")
		return
	}

	file := construirLibroLiquidaciones(lotes)
	filename := filepath.Join(os.TempDir(), "liquidaciones.xlsx")
	if err := file.SaveAs(filename); err != nil {
		h.Log.Error().Err(err).Msg("no fue posible guardar el reporte de liquidaciones")
		utils.RespondError(w, http.StatusInternalServerError, "error al generar el reporte")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="liquidaciones.xlsx"`)
	http.ServeFile(w, r, filename)
}

func (h *Handler) ExportarGastos(w http.ResponseWriter, r *http.Request) {
	f := gastos.Filtros{}
	if v, err := strconv.Atoi(r.URL.Query().Get("sede")); err == nil {
		f.SedeID = uint(v)
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("desde")); err == nil {
		f.Desde = &t
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("hasta")); err == nil {
		f.Hasta = &t
	}

	lista, err := h.Gastos.Listar(f)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al consultar gastos")
		return
	}

	file := construirLibroGastos(lista)
	filename := filepath.Join(os.TempDir(), "gastos.xlsx")
	if err := file.SaveAs(filename); err != nil {
		h.Log.Error().Err(err).Msg("no fue posible guardar el reporte de gastos")
		utils.RespondError(w, http.StatusInternalServerError, "error al generar el reporte")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="gastos.xlsx"`)
	http.ServeFile(w, r, filename)
}
