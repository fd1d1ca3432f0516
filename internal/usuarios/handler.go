package usuarios

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/clinicasmiley/api-admin/internal/auth"
	"github.com/clinicasmiley/api-admin/internal/utils"
	"gorm.io/gorm"
)

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

type crearUsuarioRequest struct {
	Usuario  string `json:"usuario"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
	EsAdmin  bool   `json:"esAdmin"`
}

// Handler atiende autenticación y administración de usuarios.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Login valida credenciales y responde {token, usuario}.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}

	user, err := h.Repo.BuscarPorUsuario(strings.TrimSpace(req.Usuario))
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "credenciales inválidas")
		return
	}
	if !utils.VerificarContrasena(user.Contrasena, req.Password) {
		utils.RespondError(w, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	token, err := auth.GenerarToken(user.ID, user.EsAdmin)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al generar token")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"usuario": user,
	})
}

// Refresh emite un token nuevo a partir del bearer token recibido, aunque
// esté vencido. Es el reintento único que dispara el cliente ante un 401.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		utils.RespondError(w, http.StatusUnauthorized, "token ausente")
		return
	}
	nuevo, err := auth.RenovarToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "no fue posible renovar el token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"token": nuevo})
}

// Crear registra un usuario nuevo (solo administradores). Si no llega
// contraseña se genera una temporal y se devuelve en la respuesta.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if strings.TrimSpace(req.Usuario) == "" {
		utils.RespondError(w, http.StatusBadRequest, "el usuario es obligatorio")
		return
	}

	temporal := ""
	if req.Password == "" {
		var err error
		temporal, err = utils.GenerarContrasenaTemporal()
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "error al generar contraseña")
			return
		}
		req.Password = temporal
	}

	hash, err := utils.HashContrasena(req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "error al procesar contraseña")
		return
	}

	u := Usuario{
		Usuario:    strings.TrimSpace(req.Usuario),
		Nombre:     req.Nombre,
		Contrasena: hash,
		EsAdmin:    req.EsAdmin,
	}
	if err := h.Repo.Crear(&u); err != nil {
		utils.RespondError(w, http.StatusConflict, "el usuario ya existe")
		return
	}

	resp := map[string]interface{}{"usuario": u}
	if temporal != "" {
		resp["contrasenaTemporal"] = temporal
	}
	utils.RespondJSON(w, http.StatusCreated, resp)
}
