package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ServiceKey
	}{
		{
			name:     "нижний регистр и подчёркивания",
			input:    "Corte Masculino",
			expected: "corte_masculino",
		},
		{
			name:     "несколько пробелов подряд схлопываются",
			input:    "Corte   Masculino",
			expected: "corte_masculino",
		},
		{
			name:     "мульти-сервисное имя даёт один составной ключ",
			input:    "Corte, Barba",
			expected: "corte,_barba",
		},
		{
			name:     "уже нормализованное имя не меняется",
			input:    "manicure",
			expected: "manicure",
		},
		{
			name:     "табуляция тоже пробельный символ",
			input:    "Corte\tMasculino",
			expected: "corte_masculino",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewServiceKey(tt.input))
		})
	}
}
