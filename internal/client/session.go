package client

// Session — явное состояние входа: пара токенов, полученная при Login
// и обновляемая при Refresh. Клиент без сессии может вызывать только
// публичные операции каталога.
type Session struct {
	AccessToken  string
	RefreshToken string
}

// Authenticated — true, когда сессия несёт действующий access-токен.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}
