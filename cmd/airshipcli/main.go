package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	airship "Aerostat/internal/calc/airship"
)

func main() {
	fmt.Println("Airship Lifting Capacity Calculator with Construction Options")
	fmt.Println("--------------------------------------------------------------")

	in := bufio.NewScanner(os.Stdin)

	length, err := readFloat(in, "Enter the total length of the airship in meters: ")
	if err != nil {
		log.Fatal(err)
	}
	diameter, err := readFloat(in, "Enter the diameter of the airship in meters: ")
	if err != nil {
		log.Fatal(err)
	}
	altitude, err := readFloat(in, "Enter the altitude in meters (0 - 11,000 m): ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nConstruction Options:")
	for i, opt := range airship.Options {
		fmt.Printf("%d. %s\n", i+1, opt)
	}
	choice, err := readLine(in, "Select a construction option (1-5) or 'all' to compare all options: ")
	if err != nil {
		log.Fatal(err)
	}

	var options []airship.Option
	if strings.EqualFold(choice, "all") {
		options = airship.Options
	} else {
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(airship.Options) {
			fmt.Println("\nError: invalid option selected")
			os.Exit(1)
		}
		options = []airship.Option{airship.Options[n-1]}
	}

	for _, opt := range options {
		res, err := airship.Evaluate(airship.Input{
			LengthM:   length,
			DiameterM: diameter,
			AltitudeM: altitude,
			Option:    opt,
		})
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			os.Exit(1)
		}
		printResult(altitude, res)
	}

	fmt.Println("\nNote: For the Helium-Filled Airship, the lifting capacity accounts for the mass of helium inside.")
}

func printResult(altitude float64, res airship.Result) {
	fmt.Printf("\nResults for %s:\n", res.Option)
	fmt.Printf("At an altitude of %g meters:\n", altitude)
	fmt.Printf("- Airship Volume: %.2f cubic meters\n", res.TotalVolumeM3)
	fmt.Printf("- Airship Surface Area: %.2f square meters\n", res.TotalSurfaceAreaM2)
	fmt.Printf("- Air Density: %.4f kg/m\u00b3\n", res.AirDensityKgM3)
	fmt.Printf("- Maximum Theoretical Lifting Capacity (Buoyant Force): %.2f kg\n", res.LiftingCapacityKg)
	if res.RequiredThicknessM != nil {
		fmt.Printf("- Required Wall Thickness: %.2f mm\n", *res.RequiredThicknessM*1000)
	} else {
		fmt.Println("- Required Wall Thickness: Not applicable")
	}
	fmt.Printf("- Estimated Structural Mass: %.2f kg\n", res.StructuralMassKg)
	fmt.Printf("- Net Payload Capacity: %.2f kg\n", res.NetPayloadKg)
}

func readLine(in *bufio.Scanner, prompt string) (string, error) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", fmt.Errorf("no input")
	}
	return strings.TrimSpace(in.Text()), nil
}

func readFloat(in *bufio.Scanner, prompt string) (float64, error) {
	s, err := readLine(in, prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
