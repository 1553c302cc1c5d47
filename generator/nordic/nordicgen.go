// Package nordic emits the peripheral interrupt tables for the nRF51 chips
// as C preprocessor macros.
package nordic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/1kohei1/nrfgen/generator"
	"github.com/1kohei1/nrfgen/interrupts"
	"github.com/1kohei1/nrfgen/svd"
)

// HeaderName is the file created inside the output directory.
const HeaderName = "peripheral_interrupts.h"

const (
	vectorsMacro  = "PERIPHERAL_INTERRUPT_VECTORS"
	handlersMacro = "PERIPHERAL_INTERRUPT_HANDLERS"
)

type nrfgen struct {
	device svd.DeviceElement
}

func NewGenerator(device svd.DeviceElement) generator.Generator {
	return &nrfgen{
		device: device,
	}
}

func (g *nrfgen) Generate(out string) error {
	// Render everything up front so a bad description never produces a file.
	var w strings.Builder
	if err := g.GenerateTo(&w); err != nil {
		return err
	}

	// Create the output directory
	if err := os.MkdirAll(out, 0750); err != nil {
		return err
	}

	// Write the contents to the file
	f, err := os.Create(filepath.Join(out, HeaderName))
	if err != nil {
		return err
	}
	if _, err = f.WriteString(w.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *nrfgen) GenerateTo(w io.Writer) error {
	table, err := interrupts.Build(g.device)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "/* Automatically generated by nrf-gen */")

	// Vector table initializer, one entry per slot
	lines := make([]string, 0, interrupts.NumVectors)
	for _, name := range table {
		if len(name) > 0 {
			lines = append(lines, name+"_Handler,")
		} else {
			lines = append(lines, "0, /* Reserved */")
		}
	}
	writeMacro(w, vectorsMacro, lines, 1)

	// Weak handler declarations, one per claimed slot
	lines = lines[:0]
	for _, name := range table.Handlers() {
		lines = append(lines, fmt.Sprintf(`void %s_Handler(void) __attribute__ ((weak, alias("Dummy_Handler")));`, name))
	}
	writeMacro(w, handlersMacro, lines, 0)

	return nil
}

// writeMacro renders lines as the body of a line-continued preprocessor
// macro definition.
func writeMacro(w io.Writer, name string, lines []string, indent int) {
	fmt.Fprintf(w, "#define %s \\\n", name)
	for n, line := range lines {
		line = strings.Repeat("\t", indent) + line
		if n < len(lines)-1 {
			line += " \\"
		}
		fmt.Fprintln(w, line)
	}
}
