// SPDX-License-Identifier: MIT

package pupil

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/wavefront/surface"
)

// seidelTerm is one parsed W<i><j><k> coefficient.
type seidelTerm struct {
	key     string
	h, r, c int // powers of field, rho and cos(theta)
	w       float64
}

// parseSeidel accepts "W" followed by exactly three digits.
func parseSeidel(key string, w float64) (seidelTerm, error) {
	k := strings.ToUpper(strings.TrimSpace(key))
	if len(k) != 4 || k[0] != 'W' {
		return seidelTerm{}, fmt.Errorf("%q: %w", key, ErrUnknownSeidel)
	}
	var p [3]int
	for i := 0; i < 3; i++ {
		d := k[i+1]
		if d < '0' || d > '9' {
			return seidelTerm{}, fmt.Errorf("%q: %w", key, ErrUnknownSeidel)
		}
		p[i] = int(d - '0')
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return seidelTerm{}, fmt.Errorf("%q = %v: %w", key, w, ErrUnknownSeidel)
	}
	return seidelTerm{key: k, h: p[0], r: p[1], c: p[2], w: w}, nil
}

// NewSeidel builds a pupil from Seidel coefficients such as
// {"W040": 1, "W111": 0.5}. The field is normalized to H = 1, so the first
// digit only names the term. θ is measured from +y: cos θ = sin φ, and a
// pure W111 tilt is zero along y = 0.
//
// Errors: ErrUnknownSeidel for malformed keys or non-finite values.
// Complexity: O(T·R·C).
func NewSeidel(terms map[string]float64, opts ...Option) (*Pupil, error) {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parsed := make([]seidelTerm, 0, len(keys))
	for _, k := range keys {
		t, err := parseSeidel(k, terms[k])
		if err != nil {
			return nil, fmt.Errorf("NewSeidel: %w", err)
		}
		parsed = append(parsed, t)
	}

	p, err := build(resolve(opts))
	if err != nil {
		return nil, err
	}
	data := make([]float64, p.grid.Len())
	var (
		rho, phi, sum float64
		i             int
	)
	for i = range data {
		if !p.grid.Defined(i) {
			data[i] = nan
			continue
		}
		rho, phi = p.grid.Sample(i)
		cosT := math.Sin(phi)
		sum = 0
		for _, t := range parsed {
			sum += t.w * math.Pow(rho, float64(t.r)) * math.Pow(cosT, float64(t.c))
		}
		data[i] = sum
	}
	if p.phase, err = surface.Wrap(p.Samples, p.Samples, data); err != nil {
		return nil, fmt.Errorf("pupil: %w", err)
	}
	return p, nil
}
