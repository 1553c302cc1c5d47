package descriptions

import (
	"errors"
	"testing"

	"github.com/1kohei1/nrfgen/interrupts"
)

func TestFor(t *testing.T) {
	device, err := For("Nordic", "nrf51.svd")
	if err != nil {
		t.Fatal(err)
	}

	if device.Name != "nrf51" {
		t.Errorf("device name = %q, want %q", device.Name, "nrf51")
	}
	if device.CPU.Name != "CM0" {
		t.Errorf("cpu name = %q, want %q", device.CPU.Name, "CM0")
	}
	for _, name := range []string{"POWER", "CLOCK", "RADIO", "RTC1", "SWI5"} {
		if _, ok := device.Peripherals.Find(name); !ok {
			t.Errorf("peripheral %s missing from the packaged description", name)
		}
	}
}

func TestForUnknown(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		file   string
	}{
		{"unknownVendor", "Atmel", "nrf51.svd"},
		{"unknownFile", "Nordic", "nrf52.svd"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := For(tc.vendor, tc.file); !errors.Is(err, ErrUnknownResource) {
				t.Errorf("For(%q, %q) error = %v, want %v", tc.vendor, tc.file, err, ErrUnknownResource)
			}
		})
	}
}

func TestVendors(t *testing.T) {
	vendors := Vendors()
	if len(vendors) == 0 {
		t.Fatal("no packaged vendors")
	}
	if vendors[0] != "Nordic" {
		t.Errorf("vendors = %v, want Nordic first", vendors)
	}
}

// The packaged description must produce a consistent vector table. Shared
// lines (POWER/CLOCK, SPI/TWI pairs, CCM/AAR) all declare matching names.
func TestPackagedDescriptionBuilds(t *testing.T) {
	device, err := For("Nordic", "nrf51.svd")
	if err != nil {
		t.Fatal(err)
	}

	table, err := interrupts.Build(device)
	if err != nil {
		t.Fatal(err)
	}

	want := map[int]string{
		0:  "POWER_CLOCK",
		1:  "RADIO",
		3:  "SPI0_TWI0",
		4:  "SPI1_TWI1",
		15: "CCM_AAR",
		25: "SWI5",
	}
	for value, name := range want {
		if table[value] != name {
			t.Errorf("slot %d = %q, want %q", value, table[value], name)
		}
	}

	// nRF51 leaves vector 5 and everything past the software interrupts
	// unassigned.
	for _, value := range []int{5, 26, 31} {
		if len(table[value]) > 0 {
			t.Errorf("slot %d = %q, want reserved", value, table[value])
		}
	}
}
