package ecs_test

import (
	"strings"
	"testing"

	"github.com/plus3/ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSignatureBits(t *testing.T) {
	var sig ecs.Signature
	assert.True(t, sig.IsEmpty())

	sig = sig.Set(0).Set(3).Set(31)
	assert.True(t, sig.Test(0))
	assert.True(t, sig.Test(3))
	assert.True(t, sig.Test(31))
	assert.False(t, sig.Test(1))
	assert.Equal(t, 3, sig.Count())
	assert.Equal(t, []ecs.ComponentId{0, 3, 31}, sig.Ids())

	sig = sig.Unset(3)
	assert.False(t, sig.Test(3))
	assert.Equal(t, 2, sig.Count())
}

func TestSignatureContains(t *testing.T) {
	required := ecs.Signature(0).Set(1).Set(2)

	tests := []struct {
		name   string
		entity ecs.Signature
		want   bool
	}{
		{"exact", ecs.Signature(0).Set(1).Set(2), true},
		{"superset", ecs.Signature(0).Set(1).Set(2).Set(5), true},
		{"missing one", ecs.Signature(0).Set(1), false},
		{"disjoint", ecs.Signature(0).Set(7), false},
		{"empty", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entity.Contains(required))
		})
	}

	assert.True(t, ecs.Signature(0).Contains(0), "every signature contains the empty requirement")
}

func TestSignatureString(t *testing.T) {
	s := ecs.Signature(0).Set(0).Set(2).String()
	assert.Len(t, s, ecs.MaxComponents)
	assert.True(t, strings.HasSuffix(s, "101"))
	assert.Equal(t, strings.Repeat("0", ecs.MaxComponents-3), s[:ecs.MaxComponents-3])
}
