package engine

import (
	"math"
	"testing"

	"creatures/internal/models"
)

// TestGlitchChance exercises the glitch probability curve.
func TestGlitchChance(t *testing.T) {
	tests := []struct {
		name        string
		t1, t2      models.StoneTier
		fusionCount int
		want        float64
	}{
		{"base chance", models.StoneTierI, models.StoneTierI, 0, 0.01},
		{"single tier four", models.StoneTierIV, models.StoneTierII, 0, 0.09},
		{"single tier five", models.StoneTierV, models.StoneTierI, 0, 0.16},
		{"double tier five adds resonance", models.StoneTierV, models.StoneTierV, 0, 0.41},
		{"fusion count accumulates", models.StoneTierI, models.StoneTierI, 10, 0.06},
		{"fusion bonus is capped", models.StoneTierI, models.StoneTierI, 100, 0.11},
		{"everything stacked", models.StoneTierV, models.StoneTierV, 40, 0.51},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GlitchChance(tc.t1, tc.t2, tc.fusionCount)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("chance = %f, want %f", got, tc.want)
			}
		})
	}
}

// TestSeverityLevels checks the discrete severity classification bounds.
func TestSeverityLevels(t *testing.T) {
	tests := []struct {
		severity int
		want     models.MutationSeverity
	}{
		{0, models.SeverityLow},
		{24, models.SeverityLow},
		{25, models.SeverityMedium},
		{49, models.SeverityMedium},
		{50, models.SeverityHigh},
		{74, models.SeverityHigh},
		{75, models.SeverityExtreme},
		{100, models.SeverityExtreme},
	}

	for _, tc := range tests {
		if got := severityLevel(tc.severity); got != tc.want {
			t.Fatalf("severityLevel(%d) = %v, want %v", tc.severity, got, tc.want)
		}
	}
}

// TestResolveMutationGuaranteed ensures two glitched catalysts always trigger
// the mutation, whatever the roll says.
func TestResolveMutationGuaranteed(t *testing.T) {
	s1 := catalystStone("33333333-3333-3333-3333-333333333333", models.ElementFire, models.StoneTierI, 0)
	s1.IsGlitched = true
	s2 := catalystStone("44444444-4444-4444-4444-444444444444", models.ElementWater, models.StoneTierI, 0)
	s2.IsGlitched = true

	for seed := uint64(0); seed < 50; seed++ {
		result := ResolveMutation(NewStream(seed), s1, s2, 0)
		if !result.Glitched || !result.Guaranteed {
			t.Fatalf("seed %d: expected guaranteed glitch, got %+v", seed, result)
		}
		if result.Multiplier < 1.1 {
			t.Fatalf("seed %d: glitched multiplier = %f, want >= 1.1", seed, result.Multiplier)
		}
	}
}

// TestResolveMutationUntriggered ensures a fusion that does not glitch keeps
// the neutral multiplier and no severity.
func TestResolveMutationUntriggered(t *testing.T) {
	s1 := catalystStone("33333333-3333-3333-3333-333333333333", models.ElementFire, models.StoneTierI, 0)
	s2 := catalystStone("44444444-4444-4444-4444-444444444444", models.ElementWater, models.StoneTierI, 0)

	untriggered := 0
	for seed := uint64(0); seed < 100; seed++ {
		result := ResolveMutation(NewStream(seed), s1, s2, 0)
		if result.Glitched {
			continue
		}
		untriggered++
		if result.Multiplier != 1.0 {
			t.Fatalf("seed %d: multiplier = %f, want 1.0", seed, result.Multiplier)
		}
		if result.Severity != 0 || result.Level != "" {
			t.Fatalf("seed %d: unexpected severity %d (%v)", seed, result.Severity, result.Level)
		}
	}
	if untriggered == 0 {
		t.Fatal("expected at least one untriggered mutation over 100 seeds")
	}
}

// TestResolveMutationKeepsStreamAligned ensures both resolver branches consume
// the same number of draws, so downstream resolvers stay reproducible.
func TestResolveMutationKeepsStreamAligned(t *testing.T) {
	plain1 := catalystStone("33333333-3333-3333-3333-333333333333", models.ElementFire, models.StoneTierI, 0)
	plain2 := catalystStone("44444444-4444-4444-4444-444444444444", models.ElementWater, models.StoneTierI, 0)

	glitched1 := catalystStone("55555555-5555-5555-5555-555555555555", models.ElementIce, models.StoneTierI, 0)
	glitched1.IsGlitched = true
	glitched2 := catalystStone("66666666-6666-6666-6666-666666666666", models.ElementAir, models.StoneTierI, 0)
	glitched2.IsGlitched = true

	for seed := uint64(0); seed < 20; seed++ {
		a := NewStream(seed)
		b := NewStream(seed)

		ResolveMutation(a, plain1, plain2, 0)
		ResolveMutation(b, glitched1, glitched2, 0)

		if a.Uint64() != b.Uint64() {
			t.Fatalf("seed %d: stream positions diverged between branches", seed)
		}
	}
}

// TestResolveMutationSeverityBounds ensures top tier catalysts produce
// severities in the upper band with matching multipliers.
func TestResolveMutationSeverityBounds(t *testing.T) {
	s1 := catalystStone("33333333-3333-3333-3333-333333333333", models.ElementFire, models.StoneTierV, 0)
	s1.IsGlitched = true
	s2 := catalystStone("44444444-4444-4444-4444-444444444444", models.ElementWater, models.StoneTierV, 0)
	s2.IsGlitched = true

	for seed := uint64(0); seed < 50; seed++ {
		result := ResolveMutation(NewStream(seed), s1, s2, 0)
		if result.Severity < 60 || result.Severity > 100 {
			t.Fatalf("seed %d: severity = %d, want within [60, 100]", seed, result.Severity)
		}
		if result.Level != models.SeverityHigh && result.Level != models.SeverityExtreme {
			t.Fatalf("seed %d: level = %v, want high or extreme", seed, result.Level)
		}
		if result.Multiplier != 1.5 && result.Multiplier != 2.0 {
			t.Fatalf("seed %d: multiplier = %f, want 1.5 or 2.0", seed, result.Multiplier)
		}
	}
}
