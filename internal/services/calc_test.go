package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3", 5},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"100-30-20", 50},
		{"100/10/2", 5},
		{"-5+3", -2},
		{"2*-3", -6},
		{"--4", 4},
		{"1.5*80", 120},
		{".5+.25", 0.75},
		{" 2 + 2 ", 4},
		{"((2))", 2},
		{"3*(120+80)/2", 300},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := EvaluateExpression(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateExpressionErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"trailing operator", "2+"},
		{"double operator", "2++3"},  // second '+' is not a valid factor
		{"unbalanced open", "(2+3"},
		{"unbalanced close", "2+3)"},
		{"letters", "2+x"},
		{"code injection attempt", "require('fs')"},
		{"double dot", "1..2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateExpression(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestEvaluateExpressionDivisionByZero(t *testing.T) {
	_, err := EvaluateExpression("5/0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = EvaluateExpression("1/(2-2)")
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
