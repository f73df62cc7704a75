package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// ChatID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type   string `json:"type"`   // subscribe | unsubscribe | ping
	ChatID string `json:"chatId"` // requerido em subscribe/unsubscribe
}

// BetUpdate representa uma aposta recém registrada, enviada aos clientes
// WebSocket inscritos no chat correspondente
type BetUpdate struct {
	ChatID  string      `json:"chatId"`
	Payload interface{} `json:"payload"`
}
