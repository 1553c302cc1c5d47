package generator

import "io"

// Generator produces chip specific source from a decoded hardware
// description.
type Generator interface {
	// Generate writes the generated output into the given directory.
	Generate(outputDir string) error

	// GenerateTo renders the generated output to an arbitrary writer.
	GenerateTo(w io.Writer) error
}
