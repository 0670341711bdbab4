package lcbspec

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFixedTableSizes(t *testing.T) {
	if len(Planets) != 8 {
		t.Errorf("len(Planets) = %d, want 8", len(Planets))
	}
	if len(OrbitClasses) != 16 {
		t.Errorf("len(OrbitClasses) = %d, want 16", len(OrbitClasses))
	}
}

func TestOrbitClassKey(t *testing.T) {
	tests := []struct {
		code    string
		want    int64
		wantErr bool
	}{
		{code: "AMO", want: 1},
		{code: "AST", want: 3},
		{code: "ast", want: 3},
		{code: " mba ", want: 8},
		{code: "CTC", want: 16},
		{code: "XYZ", wantErr: true},
		{code: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := OrbitClassKey(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownOrbitClass) {
					t.Fatalf("err = %v, want ErrUnknownOrbitClass", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("OrbitClassKey(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestPlanetKey(t *testing.T) {
	tests := []struct {
		name    string
		want    int64
		wantErr bool
	}{
		{name: "Mercury", want: 1},
		{name: "earth", want: 3},
		{name: "Saturn", want: 6},
		{name: "NEPTUNE", want: 8},
		{name: "Pluto", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanetKey(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPlanet) {
					t.Fatalf("err = %v, want ErrUnknownPlanet", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("PlanetKey(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeysFollowDeclarationOrder(t *testing.T) {
	for i, oc := range OrbitClasses {
		if k, _ := OrbitClassKey(oc.Code); k != int64(i+1) {
			t.Errorf("OrbitClassKey(%s) = %d, want %d", oc.Code, k, i+1)
		}
	}
	for i, p := range Planets {
		if k, _ := PlanetKey(p.Name); k != int64(i+1) {
			t.Errorf("PlanetKey(%s) = %d, want %d", p.Name, k, i+1)
		}
	}
}

func TestRadiusFromMass(t *testing.T) {
	// A 1000 kg body at 3000 kg/m³ occupies 1/3 m³.
	want := math.Cbrt((1.0 / 3.0) / (4.0 / 3.0 * math.Pi))
	if got := RadiusFromMass(1000); math.Abs(got-want) > 1e-12 {
		t.Errorf("RadiusFromMass(1000) = %v, want %v", got, want)
	}
	if got := RadiusFromMass(0); got != 0 {
		t.Errorf("RadiusFromMass(0) = %v, want 0", got)
	}
}

func TestCometTraitsAlwaysRecordDust(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	sawIce, sawNoIce := false, false
	for i := 0; i < 500; i++ {
		tr := NewCometTraits(r)
		if !tr.HasDust {
			t.Fatalf("draw %d: HasDust = false", i)
		}
		if tr.HasIce {
			sawIce = true
		} else {
			sawNoIce = true
		}
	}
	if !sawIce || !sawNoIce {
		t.Error("HasIce never varied over 500 draws")
	}
}

func TestSeededDrawsAreReproducible(t *testing.T) {
	a := rand.New(rand.NewPCG(42, 42))
	b := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 20; i++ {
		if NewAsteroidTraits(a) != NewAsteroidTraits(b) {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestProperty_Derivations(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("radius inverts the sphere mass formula", prop.ForAll(
		func(mass float64) bool {
			r := RadiusFromMass(mass)
			back := BulkDensity * 4.0 / 3.0 * math.Pi * r * r * r
			return math.Abs(back-mass) <= 1e-9*math.Max(1, mass)
		},
		gen.Float64Range(0, 1e12),
	))

	properties.Property("lifespan stays within [1, max(9, cbrt(mass))]", prop.ForAll(
		func(mass float64, seed uint64) bool {
			r := rand.New(rand.NewPCG(seed, seed))
			got := Lifespan(r, mass)
			upper := math.Max(maxFireballSeconds, math.Cbrt(mass))
			return got >= 1 && float64(got) <= upper
		},
		gen.Float64Range(0, 1e9),
		gen.UInt64(),
	))

	properties.Property("minerals are 3 to 7 distinct vocabulary entries", prop.ForAll(
		func(seed uint64) bool {
			r := rand.New(rand.NewPCG(seed, 7))
			picked := strings.Split(SampleMinerals(r), ", ")
			if len(picked) < minMinerals || len(picked) > maxMinerals {
				return false
			}
			seen := make(map[string]bool)
			for _, m := range picked {
				if seen[m] || !isMineral(m) {
					return false
				}
				seen[m] = true
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func isMineral(s string) bool {
	for _, m := range Minerals {
		if m == s {
			return true
		}
	}
	return false
}
