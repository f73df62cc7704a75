package dto

import "strconv"

// Update é o payload recebido no webhook (formato Bot API do Telegram).
// Só os campos usados pelo bot são mapeados.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Date      int64  `json:"date"` // unix seconds
	Text      string `json:"text"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// DisplayName resolve a identidade exibida do remetente:
// username, senão nome completo, senão fallback sintético pelo id.
func (u *User) DisplayName() string {
	if u == nil {
		return "unknown"
	}
	if u.Username != "" {
		return u.Username
	}
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name != "" {
		return name
	}
	return "user" + strconv.FormatInt(u.ID, 10)
}

// ChatID retorna o identificador do chat como string opaca.
func (m *Message) ChatID() string {
	return strconv.FormatInt(m.Chat.ID, 10)
}
