package metodospago

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestActualizarIDInvalido(t *testing.T) {
	h := NewHandler(nil)

	r := httptest.NewRequest("PUT", "/metodos-pago/abc", strings.NewReader(`{"nombre":"Datáfono"}`))
	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()

	h.Actualizar(w, r)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "id inválido")
}

func TestCrearNombreObligatorio(t *testing.T) {
	h := NewHandler(nil)

	r := httptest.NewRequest("POST", "/metodos-pago", strings.NewReader(`{"nombre":"  "}`))
	w := httptest.NewRecorder()

	h.Crear(w, r)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "el nombre es obligatorio")
}
