package utils

import "golang.org/x/crypto/bcrypt"

// HashContrasena genera un hash bcrypt para la contraseña en texto plano.
func HashContrasena(contrasena string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarContrasena compara el hash bcrypt con la contraseña en texto plano.
func VerificarContrasena(hash, contrasena string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(contrasena))
	return err == nil
}
