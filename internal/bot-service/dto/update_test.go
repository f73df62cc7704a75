package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameResolution(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{"username wins", &User{ID: 7, Username: "mya", FirstName: "Mya", LastName: "Thwe"}, "mya"},
		{"full name fallback", &User{ID: 7, FirstName: "Mya", LastName: "Thwe"}, "Mya Thwe"},
		{"first name only", &User{ID: 7, FirstName: "Mya"}, "Mya"},
		{"synthetic id fallback", &User{ID: 7}, "user7"},
		{"nil sender", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestChatIDIsOpaqueString(t *testing.T) {
	m := &Message{Chat: Chat{ID: -1001234}}
	assert.Equal(t, "-1001234", m.ChatID())
}
