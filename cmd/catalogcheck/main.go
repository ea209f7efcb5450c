// Command catalogcheck audits the static agronomy catalog compiled into the
// advisor: crop stage lengths, Kc coverage, region offsets and the reference
// book. Crop families whose first word does not match a Kc entry are reported
// but do not fail the run.
//
// Usage:
//
//	go run ./cmd/catalogcheck [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/couchcryptid/pet-irrigation-service/internal/domain"
)

// maxRegionOffset bounds the regional PET correction in mm/day.
const maxRegionOffset = 1.0

// phase tracks pass/fail for a check phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	verbose := flag.Bool("v", false, "list every mismatched crop profile")
	flag.Parse()

	os.Exit(run(os.Stdout, *verbose))
}

func run(w io.Writer, verbose bool) int {
	fmt.Fprintln(w, "=== Crop & Region Catalog Check ===")
	fmt.Fprintln(w)

	phases := []*phase{
		checkCropProfiles(),
		checkCoefficients(),
		checkRegions(),
		checkPETModel(),
		checkReference(),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-36s %s\n", p.name, status)
	}

	mismatched := domain.MismatchedCropProfiles()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Catalog: %d crop profiles, %d Kc families, %d regions\n",
		len(domain.CropProfiles()), len(domain.CoefficientNames()), len(domain.Regions()))
	fmt.Fprintf(w, "First-word mismatches: %d profiles have no Kc entry\n", len(mismatched))
	if verbose {
		for _, m := range mismatched {
			fmt.Fprintf(w, "  - %s (looked up %q)\n", m.Name, domain.GeneralCropName(m.Name))
		}
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nCatalog OK.")
		return 0
	}
	fmt.Fprintln(w, "\nCatalog check FAILED.")
	return 1
}

func checkCropProfiles() *phase {
	p := &phase{name: "Crop profiles"}
	seen := map[string]bool{}
	for _, c := range domain.CropProfiles() {
		if seen[c.Name] {
			p.errorf("duplicate profile %q", c.Name)
		}
		seen[c.Name] = true
		if c.InitialDays <= 0 || c.DevelopmentDays <= 0 || c.MidSeasonDays <= 0 || c.LateDays <= 0 {
			p.errorf("%s: stage lengths must be positive, got %d/%d/%d/%d",
				c.Name, c.InitialDays, c.DevelopmentDays, c.MidSeasonDays, c.LateDays)
		}
		if _, err := domain.FindCropProfile(c.Name); err != nil {
			p.errorf("%s: not resolvable by name: %v", c.Name, err)
		}
	}
	return p
}

func checkCoefficients() *phase {
	p := &phase{name: "Kc coefficients"}
	for _, name := range domain.CoefficientNames() {
		kc, err := domain.FindCoefficients(name)
		if err != nil {
			p.errorf("%s: %v", name, err)
			continue
		}
		for _, stage := range []domain.GrowthStage{domain.StageInitial, domain.StageDevelopment, domain.StageMidSeason, domain.StageLate} {
			if v := kc.ForStage(stage); v <= 0 || v > 2 {
				p.errorf("%s: Kc %s = %g outside (0, 2]", name, stage, v)
			}
		}
	}
	return p
}

func checkRegions() *phase {
	p := &phase{name: "Regions"}
	for _, r := range domain.Regions() {
		if math.Abs(r.Offset) > maxRegionOffset {
			p.errorf("%s: offset %g exceeds ±%g", r.Name, r.Offset, maxRegionOffset)
		}
		if r.Lat < 44 || r.Lat > 53 || r.Lon < 22 || r.Lon > 41 {
			p.errorf("%s: coordinates %g,%g outside Ukraine", r.Name, r.Lat, r.Lon)
		}
	}
	return p
}

func checkPETModel() *phase {
	p := &phase{name: "PET model"}
	for _, r := range domain.Regions() {
		prev := math.Inf(-1)
		for t := domain.MinManualTemperature; t <= domain.MaxManualTemperature; t += 5 {
			pet := domain.ComputePET(r.Name, t)
			if pet < prev {
				p.errorf("%s: PET decreases between %g°C and %g°C", r.Name, t-5, t)
			}
			if domain.Round2(pet) != pet {
				p.errorf("%s: PET %g at %g°C not rounded to 2 decimals", r.Name, pet, t)
			}
			prev = pet
		}
	}
	return p
}

func checkReference() *phase {
	p := &phase{name: "Reference book"}
	book := domain.Reference("")
	for _, s := range book.SoilTypes {
		if s.FieldCapacityMin > s.FieldCapacityMax {
			p.errorf("soil %s: field capacity range inverted", s.Type)
		}
	}
	for _, m := range book.IrrigationMethods {
		if m.Efficiency <= 0 || m.Efficiency > 100 {
			p.errorf("method %s: efficiency %g outside (0, 100]", m.Method, m.Efficiency)
		}
	}
	for _, c := range book.Crops {
		if c.RootDepthMin > c.RootDepthMax {
			p.errorf("crop %s: root depth range inverted", c.Crop)
		}
		if c.WateringThresholdMin > c.WateringThresholdMax || c.WateringThresholdMax > 100 {
			p.errorf("crop %s: watering threshold range invalid", c.Crop)
		}
	}
	return p
}
