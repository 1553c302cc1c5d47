package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/1kohei1/nrfgen/descriptions"
	"github.com/1kohei1/nrfgen/generator/nordic"
	"github.com/1kohei1/nrfgen/svd"
)

var (
	vendor    string
	file      string
	svdIn     string
	outputDir string

	rootCmd = &cobra.Command{
		Use:   "nrf-gen",
		Short: "Generate the peripheral interrupt tables for the nRF51 chips",
		Long: "Generate a C header containing the peripheral interrupt vector table and\n" +
			"the weak handler declarations for an nRF51 chip, from its packaged\n" +
			"hardware description.",
		Run: func(cmd *cobra.Command, args []string) {
			device := loadDevice()

			fmt.Println("Generating interrupt tables for the following machine:")
			fmt.Printf("Device:\t\t%s\n", device.Name)
			fmt.Printf("CPU:\t\t%s\n", device.CPU.Name)
			fmt.Printf("Revision:\t%s\n", device.CPU.Revision)
			fmt.Printf("Endian:\t\t%s\n", device.CPU.Endian)
			fmt.Printf("Peripherals:\t%d\n", len(device.Peripherals.Elements))

			gen := nordic.NewGenerator(device)
			if err := gen.Generate(outputDir); err != nil {
				log.Fatal("generator error: ", err)
			}

			fmt.Println("Done.")
		},
	}

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dump the decoded hardware description as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			device := loadDevice()

			buf, err := json.MarshalIndent(device, "", "    ")
			if err != nil {
				log.Fatal("json encode error: ", err)
			}
			os.Stdout.Write(buf)
			fmt.Println()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&vendor, "vendor", "Nordic", "hardware description vendor")
	rootCmd.PersistentFlags().StringVar(&file, "file", "nrf51.svd", "packaged hardware description file")
	rootCmd.PersistentFlags().StringVar(&svdIn, "in", "", "external SVD file overriding the packaged descriptions")
	rootCmd.Flags().StringVar(&outputDir, "out", "src/chips/nrf51822", "output directory")
	rootCmd.AddCommand(dumpCmd)
}

func loadDevice() svd.DeviceElement {
	if len(svdIn) > 0 {
		buf, err := os.ReadFile(svdIn)
		if err != nil {
			log.Fatal("file io error: ", err)
		}
		device, err := svd.Parse(buf)
		if err != nil {
			log.Fatal("xml decode error: ", err)
		}
		return device
	}

	device, err := descriptions.For(vendor, file)
	if err != nil {
		log.Fatal("description error: ", err)
	}
	return device
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
