// Package interrupts builds the external interrupt vector table from a
// decoded hardware description.
package interrupts

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/1kohei1/nrfgen/svd"
)

// NumVectors is the external interrupt capacity of the target CPU. Cortex-M0
// supports up to 32 external interrupts. Source: ARMv6-M Architecture
// Reference Manual, Table C-2 "Programmers' model feature comparison".
const NumVectors = 32

var (
	ErrConflictingHandler = errors.New("conflicting handler names for interrupt")
	ErrVectorOutOfRange   = errors.New("interrupt number exceeds the vector table")
)

// Table maps interrupt numbers to handler base names. An empty entry is a
// reserved slot.
type Table [NumVectors]string

// Build collects the interrupt lines declared by every peripheral into a
// single vector table. Peripherals sharing an interrupt line must declare it
// under the same name.
func Build(device svd.DeviceElement) (Table, error) {
	// Collect all the interrupts
	var interrupts []svd.InterruptElement
	for _, periph := range device.Peripherals.Elements {
		interrupts = append(interrupts, periph.Interrupts...)
	}

	// Sort the interrupts by value
	slices.SortStableFunc(interrupts, func(a, b svd.InterruptElement) bool {
		return a.Value < b.Value
	})

	var table Table
	for _, irq := range interrupts {
		if irq.Value >= NumVectors {
			return Table{}, fmt.Errorf("%w: %s claims %d", ErrVectorOutOfRange, irq.Name, irq.Value)
		}
		if existing := table[irq.Value]; len(existing) > 0 && existing != irq.Name {
			return Table{}, fmt.Errorf("%w %d: %s != %s", ErrConflictingHandler, irq.Value, existing, irq.Name)
		}
		table[irq.Value] = irq.Name
	}

	return table, nil
}

// Handlers returns the distinct handler base names in vector order.
func (t Table) Handlers() []string {
	var names []string
	for _, name := range t {
		if len(name) > 0 {
			names = append(names, name)
		}
	}
	return names
}
