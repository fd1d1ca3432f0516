package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerarContrasenaTemporal genera una contraseña aleatoria de 12 caracteres
// para cuentas creadas por un administrador sin contraseña inicial.
func GenerarContrasenaTemporal() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
