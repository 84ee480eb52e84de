package service

import (
	"testing"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
)

// TestTotalUnits verifies the carton/pack/unit to base-unit arithmetic
func TestTotalUnits(t *testing.T) {
	cases := []struct {
		name    string
		factors ConversionFactors
		count   PackCount
		want    int
	}{
		{
			name:    "cartons packs and units",
			factors: ConversionFactors{UnitsPerPack: 12, PacksPerCarton: 2, UnitsPerCarton: 24},
			count:   PackCount{Cartons: 2, Packs: 1, Units: 3},
			want:    63,
		},
		{
			name:    "units only",
			factors: ConversionFactors{UnitsPerPack: 12, PacksPerCarton: 2, UnitsPerCarton: 24},
			count:   PackCount{Units: 7},
			want:    7,
		},
		{
			name:    "zero count",
			factors: ConversionFactors{UnitsPerPack: 12, PacksPerCarton: 2, UnitsPerCarton: 24},
			count:   PackCount{},
			want:    0,
		},
		{
			name:    "missing factors default to 1",
			factors: ConversionFactors{},
			count:   PackCount{Cartons: 3, Packs: 2, Units: 1},
			want:    6,
		},
		{
			name:    "negative counts clamp to zero",
			factors: ConversionFactors{UnitsPerPack: 12, PacksPerCarton: 2, UnitsPerCarton: 24},
			count:   PackCount{Cartons: -5, Packs: -1, Units: 3},
			want:    3,
		},
		{
			name:    "diverged carton factor is used as stored",
			factors: ConversionFactors{UnitsPerPack: 12, PacksPerCarton: 2, UnitsPerCarton: 30},
			count:   PackCount{Cartons: 1},
			want:    30,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TotalUnits(tc.factors, tc.count)
			if got != tc.want {
				t.Fatalf("TotalUnits(%+v, %+v) = %d, want %d", tc.factors, tc.count, got, tc.want)
			}
		})
	}
}

// TestFactorsFor verifies defaulting for materials without conversion config
func TestFactorsFor(t *testing.T) {
	f := FactorsFor(nil)
	if f.UnitsPerPack != 1 || f.PacksPerCarton != 1 || f.UnitsPerCarton != 1 {
		t.Fatalf("expected all factors to default to 1, got %+v", f)
	}

	conv := &entity.UnitConversion{UnitsPerPack: 6, PacksPerCarton: 4, UnitsPerCarton: 24}
	f = FactorsFor(conv)
	if f.UnitsPerPack != 6 || f.PacksPerCarton != 4 || f.UnitsPerCarton != 24 {
		t.Fatalf("expected factors from conversion, got %+v", f)
	}
}

// TestBusinessDate verifies boundary date resolution
func TestBusinessDate(t *testing.T) {
	d := BusinessDate("2026-03-15")
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 15 {
		t.Fatalf("expected 2026-03-15, got %v", d)
	}

	// 无效输入回退到当天
	d = BusinessDate("not-a-date")
	if d.IsZero() {
		t.Fatal("expected fallback to today, got zero time")
	}
}
