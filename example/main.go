package main

import (
	"fmt"
	"log"

	"github.com/halvorsen/quant"
)

func main() {
	tirePressure, err := quant.New(32.5, "psi")
	if err != nil {
		log.Fatal(err)
	}

	kPa, err := tirePressure.Convert("kPa")
	if err != nil {
		log.Fatal(err)
	}

	si, units := tirePressure.GetSI()
	humanValue, humanUnits := tirePressure.Humanize()

	fmt.Printf("Tire pressure: %.2f psi\n", 32.5)
	fmt.Printf("  = %.1f kPa\n", kPa)
	fmt.Printf("  = %.0f %s (canonical SI)\n", si, units)
	fmt.Printf("  = %.2f %s (human-scaled)\n", humanValue, humanUnits)

	flow, err := quant.New(2.5, "kg/s")
	if err != nil {
		log.Fatal(err)
	}
	flowSI, flowUnits := flow.GetSI()
	fmt.Printf("Mass flow: %.2f %s\n", flowSI, flowUnits)
}
