package pricing

import (
	"errors"
	"testing"
)

func TestParseRegion(t *testing.T) {
	cases := []struct {
		in   string
		want Region
		ok   bool
	}{
		{"MY", RegionMY, true},
		{"sg", RegionSG, true},
		{" int ", RegionINT, true},
		{"", "", false},
		{"US", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRegion(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseRegion(%q) = %q,%v; want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}

	if got := ParseRegionOrDefault("US"); got != RegionINT {
		t.Fatalf("expected INT fallback, got %q", got)
	}
	if got := ParseRegionOrDefault("my"); got != RegionMY {
		t.Fatalf("expected MY, got %q", got)
	}
}

func TestPriceFor(t *testing.T) {
	t.Run("multipliers", func(t *testing.T) {
		cases := []struct {
			region Region
			want   int64
		}{
			{RegionMY, 850},
			{RegionSG, 1000},
			{RegionINT, 1200},
		}
		for _, tc := range cases {
			got, err := PriceFor(1000, tc.region)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("PriceFor(1000, %s) = %d, want %d", tc.region, got, tc.want)
			}
		}
	})

	t.Run("zero base", func(t *testing.T) {
		for _, r := range []Region{RegionMY, RegionSG, RegionINT} {
			got, err := PriceFor(0, r)
			if err != nil || got != 0 {
				t.Fatalf("PriceFor(0, %s) = %d,%v; want 0,nil", r, got, err)
			}
		}
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		// 999 × 0.85 = 849.15 → 849; 1001 × 1.2 = 1201.2 → 1201;
		// 990 × 0.85 = 841.5 → 842.
		if got, _ := PriceFor(999, RegionMY); got != 849 {
			t.Fatalf("expected 849, got %d", got)
		}
		if got, _ := PriceFor(1001, RegionINT); got != 1201 {
			t.Fatalf("expected 1201, got %d", got)
		}
		if got, _ := PriceFor(990, RegionMY); got != 842 {
			t.Fatalf("expected 842, got %d", got)
		}
	})

	t.Run("negative base rejected", func(t *testing.T) {
		_, err := PriceFor(-1, RegionSG)
		if !errors.Is(err, ErrNegativeBasePrice) {
			t.Fatalf("expected ErrNegativeBasePrice, got %v", err)
		}
	})

	t.Run("unknown region rejected", func(t *testing.T) {
		_, err := PriceFor(100, Region("US"))
		if !errors.Is(err, ErrUnknownRegion) {
			t.Fatalf("expected ErrUnknownRegion, got %v", err)
		}
	})
}

func TestRegionalPrices(t *testing.T) {
	set, err := RegionalPrices(1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.MY != 850 || set.SG != 1000 || set.INT != 1200 {
		t.Fatalf("unexpected set: %+v", set)
	}

	if set.For(RegionMY) != 850 || set.For(RegionSG) != 1000 {
		t.Fatalf("unexpected For lookups: %+v", set)
	}
	// Unknown region falls back to INT on the display path.
	if set.For(Region("US")) != 1200 {
		t.Fatalf("expected INT fallback, got %d", set.For(Region("US")))
	}

	if _, err := RegionalPrices(-5); !errors.Is(err, ErrNegativeBasePrice) {
		t.Fatalf("expected ErrNegativeBasePrice, got %v", err)
	}
}
