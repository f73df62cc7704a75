package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCacheKeyShape(t *testing.T) {
	assert.Equal(t, "sum:-42:total", key("-42", ModeTotal))
	assert.Equal(t, "sum:-42:user", key("-42", ModeUser))
	assert.Equal(t, "sum:-42:am_total", key("-42", ModeMorning))
	assert.Equal(t, "sum:-42:am_user", key("-42", ModeMorningUser))
}

// Invalidate tem que cobrir todos os modos, senão um relatório defasado
// sobrevive à inserção de uma aposta nova.
func TestInvalidateCoversEveryMode(t *testing.T) {
	assert.ElementsMatch(t, []string{ModeTotal, ModeUser, ModeMorning, ModeMorningUser}, modes)
}
