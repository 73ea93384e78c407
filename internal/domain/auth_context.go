package domain

// AuthContext identidade já resolvida do chamador, passada explicitamente
// a cada caso de uso em vez de estado ambiente de sessão.
// Zero value = chamador anônimo.
type AuthContext struct {
	UserID string
	Role   string
}

// Anonymous informa se não há usuário autenticado.
func (a AuthContext) Anonymous() bool {
	return a.UserID == ""
}
