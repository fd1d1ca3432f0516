package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/clinicasmiley/api-admin/internal/utils"
)

type ctxKey string

const (
	CtxUsuarioID ctxKey = "usuarioID"
	CtxEsAdmin   ctxKey = "esAdmin"
)

// Middleware exige un bearer token válido y deja la identidad en el contexto.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.RespondError(w, http.StatusUnauthorized, "token ausente")
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UserID)
		ctx = context.WithValue(ctx, CtxEsAdmin, claims.EsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin limita la ruta a usuarios administradores.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxEsAdmin)
		if ok, _ := v.(bool); !ok {
			utils.RespondError(w, http.StatusForbidden, "requiere administrador")
			return
		}
		next.ServeHTTP(w, r)
	})
}
