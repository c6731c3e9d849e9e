package order

import (
	"errors"
	"fmt"
	"strings"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrSpecificationIsNotConstructed is returned when a Specification was not
// created through NewSpecification.
var ErrSpecificationIsNotConstructed = errors.New(
	"Specification must be created via NewSpecification constructor",
)

// Material identifies the plate stock an order is produced on.
type Material int

const (
	// MaterialUnknown represents an invalid or undefined material.
	MaterialUnknown Material = iota

	// MaterialACE is the standard solvent-washable stock.
	MaterialACE

	// MaterialACT is the soft stock for flexible packaging.
	MaterialACT

	// MaterialFAH is the hard stock for fine screen work.
	MaterialFAH
)

func getMaterialStrings() map[Material]string {
	return map[Material]string{
		MaterialUnknown: "Unknown",
		MaterialACE:     "ACE",
		MaterialACT:     "ACT",
		MaterialFAH:     "FAH",
	}
}

// Validate checks that the material is one of the three named stocks.
func (m Material) Validate() error {
	if m == MaterialUnknown {
		return errs.NewValueIsRequiredError("material")
	}
	if _, ok := getMaterialStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("material",
			fmt.Errorf("%d is not a valid material", m))
	}
	return nil
}

// String returns the stock name.
func (m Material) String() string {
	if str, ok := getMaterialStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ParseMaterial converts a stock name into a Material value.
func ParseMaterial(s string) (Material, error) {
	for m, name := range getMaterialStrings() {
		if m != MaterialUnknown && name == s {
			return m, nil
		}
	}
	return MaterialUnknown, errs.NewValueIsInvalidErrorWithCause("material",
		fmt.Errorf("%q is not a valid material name", s))
}

// Thickness identifies the plate thickness. Only three values are
// manufactured; anything else is a validation error.
type Thickness int

const (
	// ThicknessUnknown represents an invalid or undefined thickness.
	ThicknessUnknown Thickness = iota

	// Thickness114 is the 1.14 mm plate.
	Thickness114

	// Thickness170 is the 1.70 mm plate.
	Thickness170

	// Thickness254 is the 2.54 mm plate.
	Thickness254
)

func getThicknessMillimeters() map[Thickness]float64 {
	return map[Thickness]float64{
		Thickness114: 1.14,
		Thickness170: 1.70,
		Thickness254: 2.54,
	}
}

// Validate checks that the thickness is one of the manufactured values.
func (t Thickness) Validate() error {
	if t == ThicknessUnknown {
		return errs.NewValueIsRequiredError("materialThickness")
	}
	if _, ok := getThicknessMillimeters()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("materialThickness",
			fmt.Errorf("%d is not a valid thickness", t))
	}
	return nil
}

// Millimeters returns the physical plate thickness in millimeters,
// or 0 for an invalid value.
func (t Thickness) Millimeters() float64 {
	return getThicknessMillimeters()[t]
}

// String returns the thickness formatted in millimeters, e.g. "1.70".
func (t Thickness) String() string {
	if mm, ok := getThicknessMillimeters()[t]; ok {
		return fmt.Sprintf("%.2f", mm)
	}
	return "Unknown"
}

// ParseThickness converts a millimeter value into a Thickness.
// Unrecognized values are rejected, never defaulted.
func ParseThickness(mm float64) (Thickness, error) {
	for t, value := range getThicknessMillimeters() {
		if value == mm {
			return t, nil
		}
	}
	return ThicknessUnknown, errs.NewValueIsInvalidErrorWithCause("materialThickness",
		fmt.Errorf("%.2f is not a manufactured thickness", mm))
}

// PrintingMode identifies which side of the substrate carries the print.
type PrintingMode int

const (
	// PrintingModeUnknown represents an invalid or undefined mode.
	PrintingModeUnknown PrintingMode = iota

	// PrintingSurface prints on the front of the substrate.
	PrintingSurface

	// PrintingReverse prints mirrored on the back of the substrate.
	PrintingReverse
)

func getPrintingModeStrings() map[PrintingMode]string {
	return map[PrintingMode]string{
		PrintingModeUnknown: "Unknown",
		PrintingSurface:     "Surface",
		PrintingReverse:     "Reverse",
	}
}

// Validate checks that the printing mode is Surface or Reverse.
func (p PrintingMode) Validate() error {
	if p != PrintingSurface && p != PrintingReverse {
		return errs.NewValueIsInvalidErrorWithCause("printingMode",
			fmt.Errorf("%d is not a valid printing mode", p))
	}
	return nil
}

// String returns the mode name.
func (p PrintingMode) String() string {
	if str, ok := getPrintingModeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// ParsePrintingMode converts a mode name into a PrintingMode value.
func ParsePrintingMode(s string) (PrintingMode, error) {
	for p, name := range getPrintingModeStrings() {
		if p != PrintingModeUnknown && name == s {
			return p, nil
		}
	}
	return PrintingModeUnknown, errs.NewValueIsInvalidErrorWithCause("printingMode",
		fmt.Errorf("%q is not a valid printing mode", s))
}

// Color is one of the named inks an order is printed with.
type Color string

const (
	ColorCyan    Color = "Cyan"
	ColorMagenta Color = "Magenta"
	ColorYellow  Color = "Yellow"
	ColorBlack   Color = "Black"
	ColorWhite   Color = "White"
	ColorVarnish Color = "Varnish"

	// ColorFullProcess is the combined process-color marker. It stands for
	// the complete CMYK set and counts as four colors.
	ColorFullProcess Color = "FullProcess"
)

// processColorWeight is how many plates the combined process-color
// marker contributes to the color count.
const processColorWeight = 4

func getNamedColors() map[Color]struct{} {
	return map[Color]struct{}{
		ColorCyan:        {},
		ColorMagenta:     {},
		ColorYellow:      {},
		ColorBlack:       {},
		ColorWhite:       {},
		ColorVarnish:     {},
		ColorFullProcess: {},
	}
}

// Validate checks that the color is one of the named inks.
func (c Color) Validate() error {
	if _, ok := getNamedColors()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("usedColors",
			fmt.Errorf("%q is not a named color", string(c)))
	}
	return nil
}

// Specification is the immutable description of what is being printed:
// physical dimensions, repeat counts, plate stock and thickness, printing
// mode, and the ink set. It is a value object; once attached to an order
// it is replaced wholesale, never mutated.
//
// Width and height of zero mean the dimension has not been provided yet;
// the price estimator treats such specifications as "not yet calculable".
type Specification struct { //nolint:recvcheck //using for validation
	width        float64
	height       float64
	widthRepeat  int
	heightRepeat int
	material     Material
	thickness    Thickness
	printingMode PrintingMode
	usedColors   []Color
	customColors []string

	guard guard.ConstructorGuard
}

// NewSpecification creates a validated Specification.
//
// Rules enforced:
//   - width and height must be non-negative (zero means not yet provided)
//   - repeat counts default to 1 when zero and must not be negative
//   - material, thickness, and printing mode must be defined enum values
//   - used colors must be named inks; duplicates are dropped
//   - custom colors are free text; blank entries are dropped
func NewSpecification(
	width, height float64,
	widthRepeat, heightRepeat int,
	material Material,
	thickness Thickness,
	printingMode PrintingMode,
	usedColors []Color,
	customColors []string,
) (Specification, error) {
	spec := Specification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setDimensions(width, height),
		spec.setRepeats(widthRepeat, heightRepeat),
		spec.setMaterial(material, thickness),
		spec.setPrintingMode(printingMode),
		spec.setColors(usedColors, customColors),
	); err != nil {
		return Specification{}, err
	}

	return spec, nil
}

// Validate ensures the Specification was created via NewSpecification.
func (s Specification) Validate() error {
	return s.guard.Validate(ErrSpecificationIsNotConstructed)
}

// Width returns the single-repeat width.
func (s Specification) Width() float64 { return s.width }

// Height returns the single-repeat height.
func (s Specification) Height() float64 { return s.height }

// WidthRepeat returns how many times the design repeats horizontally.
func (s Specification) WidthRepeat() int { return s.widthRepeat }

// HeightRepeat returns how many times the design repeats vertically.
func (s Specification) HeightRepeat() int { return s.heightRepeat }

// Material returns the plate stock.
func (s Specification) Material() Material { return s.material }

// Thickness returns the plate thickness.
func (s Specification) Thickness() Thickness { return s.thickness }

// PrintingMode returns the printing mode.
func (s Specification) PrintingMode() PrintingMode { return s.printingMode }

// UsedColors returns a copy of the named ink set.
func (s Specification) UsedColors() []Color {
	colors := make([]Color, len(s.usedColors))
	copy(colors, s.usedColors)
	return colors
}

// CustomColors returns a copy of the ordered free-text color list.
func (s Specification) CustomColors() []string {
	colors := make([]string, len(s.customColors))
	copy(colors, s.customColors)
	return colors
}

// HasDimensions reports whether both width and height have been provided.
func (s Specification) HasDimensions() bool {
	return s.width > 0 && s.height > 0
}

// TotalWidth returns the width across all horizontal repeats.
func (s Specification) TotalWidth() float64 {
	return s.width * float64(s.widthRepeat)
}

// TotalHeight returns the height across all vertical repeats.
func (s Specification) TotalHeight() float64 {
	return s.height * float64(s.heightRepeat)
}

// ColorCount returns the number of plates the ink set requires: the
// combined process-color marker counts as four, every other named ink and
// every non-empty custom color counts as one, and the result is never
// below one.
func (s Specification) ColorCount() int {
	count := 0
	for _, c := range s.usedColors {
		if c == ColorFullProcess {
			count += processColorWeight
		} else {
			count++
		}
	}
	count += len(s.customColors)
	if count < 1 {
		count = 1
	}
	return count
}

func (s *Specification) setDimensions(width, height float64) error {
	var errWidth, errHeight error
	if width < 0 {
		errWidth = errs.NewValueIsInvalidErrorWithCause("width",
			fmt.Errorf("%.2f is negative", width))
	}
	if height < 0 {
		errHeight = errs.NewValueIsInvalidErrorWithCause("height",
			fmt.Errorf("%.2f is negative", height))
	}
	if err := errors.Join(errWidth, errHeight); err != nil {
		return err
	}

	s.width = width
	s.height = height
	return nil
}

func (s *Specification) setRepeats(widthRepeat, heightRepeat int) error {
	if widthRepeat == 0 {
		widthRepeat = 1
	}
	if heightRepeat == 0 {
		heightRepeat = 1
	}

	var errWidth, errHeight error
	if widthRepeat < 0 {
		errWidth = errs.NewValueIsInvalidErrorWithCause("widthRepeatCount",
			fmt.Errorf("%d is not positive", widthRepeat))
	}
	if heightRepeat < 0 {
		errHeight = errs.NewValueIsInvalidErrorWithCause("heightRepeatCount",
			fmt.Errorf("%d is not positive", heightRepeat))
	}
	if err := errors.Join(errWidth, errHeight); err != nil {
		return err
	}

	s.widthRepeat = widthRepeat
	s.heightRepeat = heightRepeat
	return nil
}

func (s *Specification) setMaterial(material Material, thickness Thickness) error {
	if err := errors.Join(material.Validate(), thickness.Validate()); err != nil {
		return err
	}

	s.material = material
	s.thickness = thickness
	return nil
}

func (s *Specification) setPrintingMode(mode PrintingMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	s.printingMode = mode
	return nil
}

func (s *Specification) setColors(usedColors []Color, customColors []string) error {
	seen := make(map[Color]struct{}, len(usedColors))
	deduped := make([]Color, 0, len(usedColors))
	for _, c := range usedColors {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		deduped = append(deduped, c)
	}

	trimmed := make([]string, 0, len(customColors))
	for _, c := range customColors {
		if name := strings.TrimSpace(c); name != "" {
			trimmed = append(trimmed, name)
		}
	}

	s.usedColors = deduped
	s.customColors = trimmed
	return nil
}
