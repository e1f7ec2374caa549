package voltorb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendEmpty(t *testing.T) {
	_, _, ok := Recommend(nil)
	assert.False(t, ok)

	_, _, ok = Recommend(map[Coord]Posterior{})
	assert.False(t, ok)
}

func TestRecommendOrdering(t *testing.T) {
	safe := Posterior{Total: 10, P: [4]float64{0.1, 0.5, 0.3, 0.1}, EV: 1.4}
	risky := Posterior{Total: 10, P: [4]float64{0.6, 0.2, 0.1, 0.1}, EV: 0.7}
	safeHighEV := Posterior{Total: 10, P: [4]float64{0.1, 0.2, 0.3, 0.4}, EV: 2.0}

	tests := []struct {
		name string
		post map[Coord]Posterior
		want Coord
	}{
		{
			name: "minimum bomb chance wins",
			post: map[Coord]Posterior{
				{0, 0}: risky,
				{3, 2}: safe,
			},
			want: Coord{3, 2},
		},
		{
			name: "bomb tie breaks on expected value",
			post: map[Coord]Posterior{
				{1, 1}: safe,
				{4, 4}: safeHighEV,
			},
			want: Coord{4, 4},
		},
		{
			name: "full tie breaks row-major",
			post: map[Coord]Posterior{
				{2, 3}: safe,
				{2, 1}: safe,
				{4, 0}: safe,
			},
			want: Coord{2, 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rc, p, ok := Recommend(test.post)
			require.True(t, ok)
			assert.Equal(t, test.want, rc)
			assert.Equal(t, test.post[test.want], p)
		})
	}
}
