package auth

import (
	"crypto/hmac"
	"errors"
)

// ErrWrongPassword — пароль рекрутера не подошел.
var ErrWrongPassword = errors.New("неверный пароль рекрутера")

// Gate — парольный шлюз раздела рекрутера.
// Один общий пароль, без токенов и ограничения попыток.
type Gate struct {
	password string
}

// NewGate создает шлюз с заданным паролем.
func NewGate(password string) *Gate {
	return &Gate{password: password}
}

// Verify сверяет пароль за константное время.
func (g *Gate) Verify(password string) error {
	if !hmac.Equal([]byte(password), []byte(g.password)) {
		return ErrWrongPassword
	}
	return nil
}
