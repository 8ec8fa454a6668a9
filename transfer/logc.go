package transfer

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedConfiguration is returned when a firmware, method and
// exposure index combination is absent from the calibration tables.
var ErrUnsupportedConfiguration = errors.New("unsupported log curve configuration")

// ALEXA firmware revisions with published Log C calibration data.
const (
	FirmwareSUP2 = "SUP 2.x"
	FirmwareSUP3 = "SUP 3.x"
)

// Log C conversion methods.
const (
	MethodLinearSceneExposureFactor = "Linear Scene Exposure Factor"
	MethodNormalisedSensorSignal    = "Normalised Sensor Signal"
)

// logCCoefficients is one fitted parameter set of the piecewise Log C
// curve. The values are vendor calibration constants, not derivable.
type logCCoefficients struct {
	cut   float64 // linear/log crossover on the scene-linear axis
	a     float64
	b     float64
	c     float64
	d     float64
	e     float64
	f     float64
	eCutF float64 // encoded value at the crossover
}

// LogC is the ALEXA Log C transfer function for one firmware revision,
// conversion method and exposure index. The curve is logarithmic over
// the working exposure range with a linear toe below the crossover,
// which keeps the encoding invertible near black.
type LogC struct {
	Firmware string
	Method   string
	EI       int

	coeff logCCoefficients
}

// NewLogC looks up the calibration constants for the given firmware,
// method and exposure index. Unknown combinations yield an error
// wrapping ErrUnsupportedConfiguration.
func NewLogC(firmware, method string, ei int) (*LogC, error) {
	byMethod, ok := logCCurves[firmware]
	if !ok {
		return nil, fmt.Errorf("%w: firmware %q", ErrUnsupportedConfiguration, firmware)
	}
	byEI, ok := byMethod[method]
	if !ok {
		return nil, fmt.Errorf("%w: method %q for firmware %q", ErrUnsupportedConfiguration, method, firmware)
	}
	coeff, ok := byEI[ei]
	if !ok {
		return nil, fmt.Errorf("%w: EI %d for %s/%s", ErrUnsupportedConfiguration, ei, firmware, method)
	}

	return &LogC{Firmware: firmware, Method: method, EI: ei, coeff: coeff}, nil
}

func (l *LogC) Name() string {
	return fmt.Sprintf("ALEXA Log C (%s, %s, EI %d)", l.Firmware, l.Method, l.EI)
}

// Encode maps a scene-linear value to its Log C encoded signal. The
// logarithm requires a*x+b > 0; callers supply physically valid
// scene-linear input.
func (l *LogC) Encode(x float64) float64 {
	k := l.coeff
	if x > k.cut {
		return k.c*math.Log10(k.a*x+k.b) + k.d
	}
	return k.e*x + k.f
}

// Decode maps a Log C encoded signal back to scene-linear.
func (l *LogC) Decode(v float64) float64 {
	k := l.coeff
	if v > k.eCutF {
		return (math.Pow(10, (v-k.d)/k.c) - k.b) / k.a
	}
	return (v - k.f) / k.e
}

// EncodeLogC applies the Log C curve selected by firmware, method and
// exposure index to a single scene-linear value.
func EncodeLogC(x float64, firmware, method string, ei int) (float64, error) {
	l, err := NewLogC(firmware, method, ei)
	if err != nil {
		return 0, err
	}
	return l.Encode(x), nil
}

// DecodeLogC inverts the Log C curve selected by firmware, method and
// exposure index for a single encoded value.
func DecodeLogC(v float64, firmware, method string, ei int) (float64, error) {
	l, err := NewLogC(firmware, method, ei)
	if err != nil {
		return 0, err
	}
	return l.Decode(v), nil
}

// LogCClipLevels returns the encoded black and white clip levels of the
// sensor signal for a firmware revision and exposure index.
func LogCClipLevels(firmware string, ei int) (black, white float64, err error) {
	byEI, ok := logCClipLevels[firmware]
	if !ok {
		return 0, 0, fmt.Errorf("%w: firmware %q", ErrUnsupportedConfiguration, firmware)
	}
	levels, ok := byEI[ei]
	if !ok {
		return 0, 0, fmt.Errorf("%w: EI %d for firmware %q", ErrUnsupportedConfiguration, ei, firmware)
	}
	return levels[0], levels[1], nil
}

// LogCExposureIndexes lists the exposure indexes with calibration data
// for a firmware revision and method, in ascending order.
func LogCExposureIndexes(firmware, method string) []int {
	byEI := logCCurves[firmware][method]
	eis := make([]int, 0, len(byEI))
	for ei := range byEI {
		eis = append(eis, ei)
	}
	sortInts(eis)
	return eis
}

func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
