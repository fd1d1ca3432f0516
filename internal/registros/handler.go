package registros

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clinicasmiley/api-admin/internal/caja"
	"github.com/clinicasmiley/api-admin/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia las rutas de registros de tratamiento.
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

type crearRegistroRequest struct {
	Profesional      string  `json:"profesional"`
	Paciente         string  `json:"paciente"`
	Documento        string  `json:"documento"`
	Servicio         string  `json:"servicio"`
	Sesiones         int     `json:"sesiones"`
	Fecha            string  `json:"fecha"`
	FechaFinal       string  `json:"fechaFinal"`
	Abono            float64 `json:"abono"`
	MetodoPagoAbono  string  `json:"metodoPagoAbono"`
	Descuento        float64 `json:"descuento"`
	Total            float64 `json:"total"`
	ValorLiquidado   float64 `json:"valorLiquidado"`
	ValorPagado      float64 `json:"valorPagado"`
	MetodoPago       string  `json:"metodoPago"`
	EsPacientePropio bool    `json:"esPacientePropio"`
	IDPorcentaje     uint    `json:"idPorcentaje"`
	Observaciones    string  `json:"observaciones"`
	SedeID           uint    `json:"sedeId"`
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearRegistroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(req.Profesional) == "" ||
		strings.TrimSpace(req.Paciente) == "" ||
		strings.TrimSpace(req.Servicio) == "" {
		utils.RespondError(w, http.StatusBadRequest, "profesional, paciente y servicio son obligatorios")
		return
	}
	if req.Total <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "el total debe ser mayor que cero")
		return
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "fecha inválida (formato 2006-01-02)")
		return
	}
	var fechaFinal *time.Time
	if req.FechaFinal != "" {
		t, err := time.Parse("2006-01-02", req.FechaFinal)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "fecha final inválida (formato 2006-01-02)")
			return
		}
		fechaFinal = &t
	}
	if req.Sesiones <= 0 {
		req.Sesiones = 1
	}

	reg := RegistroTratamiento{
		Profesional:      strings.TrimSpace(req.Profesional),
		Paciente:         strings.TrimSpace(req.Paciente),
		Documento:        req.Documento,
		Servicio:         strings.TrimSpace(req.Servicio),
		Sesiones:         req.Sesiones,
		Fecha:            fecha,
		FechaFinal:       fechaFinal,
		Abono:            req.Abono,
		MetodoPagoAbono:  req.MetodoPagoAbono,
		Descuento:        req.Descuento,
		Total:            req.Total,
		ValorLiquidado:   req.ValorLiquidado,
		ValorPagado:      req.ValorPagado,
		MetodoPago:       req.MetodoPago,
		EsPacientePropio: req.EsPacientePropio,
		IDPorcentaje:     req.IDPorcentaje,
		Observaciones:    req.Observaciones,
		SedeID:           req.SedeID,
	}
	if err := h.Repo.Crear(&reg); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al crear registro")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, reg)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	f := Filtros{
		Profesional: r.URL.Query().Get("profesional"),
		Paciente:    r.URL.Query().Get("paciente"),
		Servicio:    r.URL.Query().Get("servicio"),
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("sede")); err == nil {
		f.SedeID = uint(v)
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("desde")); err == nil {
		f.Desde = &t
	}
	if t, err := time.Parse("2006-01-02", r.URL.Query().Get("hasta")); err == nil {
		f.Hasta = &t
	}
	f.SoloPendientes = r.URL.Query().Get("pendientes") == "true"

	list, err := h.Repo.Listar(f)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al listar registros")
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
	reg, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "registro no encontrado")
		return
	}
	var payload RegistroTratamiento
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	reg.Profesional = payload.Profesional
	reg.Paciente = payload.Paciente
	reg.Documento = payload.Documento
	reg.Servicio = payload.Servicio
	reg.Sesiones = payload.Sesiones
	reg.FechaFinal = payload.FechaFinal
	reg.Abono = payload.Abono
	reg.MetodoPagoAbono = payload.MetodoPagoAbono
	reg.Descuento = payload.Descuento
	reg.Total = payload.Total
	reg.ValorLiquidado = payload.ValorLiquidado
	reg.ValorPagado = payload.ValorPagado
	reg.MetodoPago = payload.MetodoPago
	reg.EsPacientePropio = payload.EsPacientePropio
	reg.IDPorcentaje = payload.IDPorcentaje
	reg.Observaciones = payload.Observaciones
	if err := h.Repo.Actualizar(reg); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al actualizar registro")
		return
	}
	utils.RespondJSON(w, http.StatusOK, reg)
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "id inválido")
		return
	}
	reg, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "registro no encontrado")
		return
	}
	if err := h.Repo.Eliminar(reg); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar registro")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type eliminarLoteRequest struct {
	IDs []uint `json:"ids"`
}

func (h *Handler) EliminarLote(w http.ResponseWriter, r *http.Request) {
	var req eliminarLoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if len(req.IDs) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "la lista de ids está vacía")
		return
	}
	if err := h.Repo.EliminarLote(req.IDs); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al eliminar registros")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type terminarRequest struct {
	Profesional string `json:"profesional"`
	Paciente    string `json:"paciente"`
	Servicio    string `json:"servicio"`
	FechaFinal  string `json:"fechaFinal"`
	MetodoPago  string `json:"metodoPago"`
	SedeID      uint   `json:"sedeId"`
}

// Terminar cierra todas las sesiones pendientes de un tratamiento antes
// de la liquidación. Si el pago es en efectivo, el saldo cerrado entra al
// cuadre de caja de la sede como un delta atómico, dentro de la misma
// transacción.
func (h *Handler) Terminar(w http.ResponseWriter, r *http.Request) {
	var req terminarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Profesional == "" || req.Paciente == "" || req.Servicio == "" {
		utils.RespondError(w, http.StatusBadRequest, "profesional, paciente y servicio son obligatorios")
		return
	}
	if req.MetodoPago == "" {
		utils.RespondError(w, http.StatusBadRequest, "el método de pago es obligatorio")
		return
	}
	fecha, err := time.Parse("2006-01-02", req.FechaFinal)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "fecha final inválida (formato 2006-01-02)")
		return
	}

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

	grupo, err := h.Repo.BuscarGrupo(tx, req.Profesional, req.Paciente, req.Servicio)
	if err != nil || len(grupo) == 0 {
		_ = tx.Rollback()
		utils.RespondError(w, http.StatusNotFound, "tratamiento no encontrado")
		return
	}

	delta := aplicarTerminacion(grupo, fecha, req.MetodoPago)
	for i := range grupo {
		if err := tx.Save(&grupo[i]).Error; err != nil {
			_ = tx.Rollback()
			utils.RespondError(w, http.StatusInternalServerError, "error al cerrar sesiones")
			return
		}
	}

	if req.MetodoPago == MetodoEfectivo && delta > 0 {
		if err := caja.AplicarDelta(tx, req.SedeID, delta); err != nil {
			_ = tx.Rollback()
			utils.RespondError(w, http.StatusInternalServerError, "error al actualizar la caja")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		utils.RespondError(w, http.StatusInternalServerError, "error al confirmar la transacción")
		return
	}

	utils.RespondJSON(w, http.StatusOK, grupo)
}
