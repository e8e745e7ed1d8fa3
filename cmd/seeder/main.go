package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/poiesic/partdex"
	"github.com/poiesic/partdex/core"
)

var (
	dbPath  = flag.String("db", "./catalog_db", "path to the BadgerDB database directory")
	rebuild = flag.Bool("rebuild", false, "rebuild the token index after seeding")
)

var sampleParts = []*core.Part{
	{Name: "10k resistor", PartNumber: "RC0805FR-0710KL", Manufacturer: "Yageo", ComponentType: "resistor", Value: "10.0kΩ", Package: "0805", Specs: map[string]string{"tolerance": "1%", "power": "0.125W"}},
	{Name: "4.7k resistor", PartNumber: "RC0805FR-074K7L", Manufacturer: "Yageo", ComponentType: "resistor", Value: "4.7kΩ", Package: "0805", Specs: map[string]string{"tolerance": "1%"}},
	{Name: "1k resistor", PartNumber: "CFR-25JB-52-1K", Manufacturer: "Yageo", ComponentType: "resistor", Value: "1.0kΩ", Package: "axial", Specs: map[string]string{"tolerance": "5%", "power": "0.25W"}},
	{Name: "100 ohm resistor", PartNumber: "RC0603FR-07100RL", Manufacturer: "Yageo", ComponentType: "resistor", Value: "100.0Ω", Package: "0603"},
	{Name: "100nF ceramic capacitor", PartNumber: "CC0805KRX7R9BB104", Manufacturer: "Yageo", ComponentType: "capacitor", Value: "100.0nF", Package: "0805", Specs: map[string]string{"dielectric": "X7R", "voltage": "50V"}},
	{Name: "10uF electrolytic capacitor", PartNumber: "UVR1H100MDD", Manufacturer: "Nichicon", ComponentType: "capacitor", Value: "10.0μF", Package: "radial", Specs: map[string]string{"voltage": "50V"}},
	{Name: "22pF ceramic capacitor", PartNumber: "CC0603JRNPO9BN220", Manufacturer: "Yageo", ComponentType: "capacitor", Value: "22.0pF", Package: "0603"},
	{Name: "10uH power inductor", PartNumber: "SRR1260-100M", Manufacturer: "Bourns", ComponentType: "inductor", Value: "10.0μH", Package: "SMD", Specs: map[string]string{"current": "4.2A"}},
	{Name: "1N4148 switching diode", PartNumber: "1N4148", Manufacturer: "Vishay", ComponentType: "diode", Package: "DO-35"},
	{Name: "1N5819 schottky diode", PartNumber: "1N5819", Manufacturer: "ON Semiconductor", ComponentType: "diode", Package: "DO-41"},
	{Name: "blue LED", PartNumber: "LED-BL-5MM", ComponentType: "led", Package: "5mm", Specs: map[string]string{"wavelength": "470nm"}},
	{Name: "red LED", PartNumber: "LED-RD-5MM", ComponentType: "led", Package: "5mm"},
	{Name: "2N3904 NPN transistor", PartNumber: "2N3904", Manufacturer: "ON Semiconductor", ComponentType: "transistor", Package: "TO-92"},
	{Name: "IRLZ44N MOSFET", PartNumber: "IRLZ44N", Manufacturer: "Infineon", ComponentType: "transistor", Package: "TO-220", Specs: map[string]string{"vds": "55V", "id": "47A"}},
	{Name: "LM358 op-amp", PartNumber: "LM358P", Manufacturer: "Texas Instruments", ComponentType: "op-amp", Package: "DIP-8"},
	{Name: "NE555 timer", PartNumber: "NE555P", Manufacturer: "Texas Instruments", ComponentType: "ic", Package: "DIP-8"},
	{Name: "ATmega328P microcontroller", PartNumber: "ATMEGA328P-PU", Manufacturer: "Microchip", ComponentType: "ic", Package: "DIP-28", Specs: map[string]string{"flash": "32KB", "clock": "20MHz"}},
	{Name: "16MHz crystal", PartNumber: "ABM8-16.000MHZ", Manufacturer: "Abracon", ComponentType: "crystal", Value: "16.0MHz", Package: "SMD"},
	{Name: "tactile switch", PartNumber: "TL1105SPF250Q", Manufacturer: "E-Switch", ComponentType: "switch", Package: "THT"},
	{Name: "5V relay", PartNumber: "SRD-05VDC-SL-C", Manufacturer: "Songle", ComponentType: "relay", Value: "5.0V", Package: "THT"},
}

func main() {
	flag.Parse()

	catalog, err := partdex.Open(*dbPath)
	if err != nil {
		panic(err)
	}
	defer catalog.Close()

	ctx := context.Background()

	added, err := catalog.AddParts(ctx, sampleParts...)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded catalog", "db", *dbPath, "parts", len(added))

	if *rebuild {
		count, err := catalog.RebuildIndex(ctx)
		if err != nil {
			panic(err)
		}
		slog.Info("rebuilt index", "parts", count)
	}

	total, err := catalog.PartRepository().CountParts(ctx)
	if err != nil {
		panic(err)
	}
	slog.Info("catalog ready", "total", total)
}
