package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name        string
		competitors int
		step        string
		max         string
		want        string
		valid       bool
	}{
		{"no competitors", 0, "0.10", "2.0", "1", true},
		{"three competitors", 3, "0.10", "2.0", "1.30", true},
		{"capped by ceiling", 3, "0.10", "1.2", "1.2", true},
		{"many competitors", 50, "0.10", "2.0", "2.0", true},
		{"zero step", 10, "0", "2.0", "1", true},
		{"ceiling exactly one", 5, "0.10", "1", "1", true},
		{"ceiling below one", 0, "0.10", "0.5", "1", false},
		{"ceiling below one with competitors", 4, "0.10", "0.9", "1", false},
		{"negative step", 4, "-0.5", "2.0", "1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := Multiplier(tt.competitors, d(tt.step), d(tt.max))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestMultiplierBounds(t *testing.T) {
	steps := []string{"0", "0.01", "0.10", "0.25", "1"}
	ceilings := []string{"1", "1.5", "2.0", "5"}
	for _, s := range steps {
		for _, m := range ceilings {
			for n := 0; n <= 40; n++ {
				got, valid := Multiplier(n, d(s), d(m))
				assert.True(t, valid)
				assert.True(t, got.GreaterThanOrEqual(one), "n=%d step=%s max=%s", n, s, m)
				assert.True(t, got.LessThanOrEqual(d(m)), "n=%d step=%s max=%s", n, s, m)
			}
		}
	}
}
