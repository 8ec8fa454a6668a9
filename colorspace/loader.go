package colorspace

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wudi/colorkit/cie"
	"github.com/wudi/colorkit/observability"
	"github.com/wudi/colorkit/transfer"
)

// Loader reads colorspace definitions from YAML documents.
type Loader struct {
	Logger observability.Logger
}

type definitionsFile struct {
	Colorspaces []definition `yaml:"colorspaces"`
}

type definition struct {
	Name      string `yaml:"name"`
	Primaries struct {
		Red   []float64 `yaml:"red"`
		Green []float64 `yaml:"green"`
		Blue  []float64 `yaml:"blue"`
	} `yaml:"primaries"`
	Whitepoint struct {
		Observer   string    `yaml:"observer"`
		Illuminant string    `yaml:"illuminant"`
		XY         []float64 `yaml:"xy"`
	} `yaml:"whitepoint"`
	Curve curveSpec `yaml:"curve"`
}

type curveSpec struct {
	Type     string    `yaml:"type"`
	Gamma    float64   `yaml:"gamma"`
	Firmware string    `yaml:"firmware"`
	Method   string    `yaml:"method"`
	EI       int       `yaml:"ei"`
	X        []float64 `yaml:"x"`
	Y        []float64 `yaml:"y"`
}

// LoadDefinitions parses YAML colorspace definitions with a nop logger.
func LoadDefinitions(r io.Reader) ([]Colorspace, error) {
	return Loader{Logger: observability.NopLogger{}}.Load(r)
}

// Load parses YAML colorspace definitions and derives each space via
// the normalized primary matrix. The definitions are returned in file
// order; nothing is registered implicitly.
func (l Loader) Load(r io.Reader) ([]Colorspace, error) {
	logger := l.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing colorspace definitions: %w", err)
	}

	spaces := make([]Colorspace, 0, len(file.Colorspaces))
	for _, def := range file.Colorspaces {
		c, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("colorspace %q: %w", def.Name, err)
		}
		logger.Debug("loaded colorspace definition",
			observability.String("name", c.Name()),
			observability.String("curve", c.TransferFunction().Name()))
		spaces = append(spaces, c)
	}

	logger.Info("loaded colorspace definitions",
		observability.Int(observability.MetricSpacesLoaded, len(spaces)))
	return spaces, nil
}

func (d definition) build() (Colorspace, error) {
	if d.Name == "" {
		return Colorspace{}, fmt.Errorf("missing name")
	}

	p, err := d.primaries()
	if err != nil {
		return Colorspace{}, err
	}

	white, whiteName, err := d.whitepoint()
	if err != nil {
		return Colorspace{}, err
	}

	curve, err := d.Curve.build()
	if err != nil {
		return Colorspace{}, err
	}

	return New(d.Name, p, white, whiteName, curve)
}

func (d definition) primaries() (Primaries, error) {
	toXY := func(channel string, v []float64) (cie.XY, error) {
		if len(v) != 2 {
			return cie.XY{}, fmt.Errorf("%s primary needs [x, y], got %d values", channel, len(v))
		}
		return cie.XY{X: v[0], Y: v[1]}, nil
	}

	red, err := toXY("red", d.Primaries.Red)
	if err != nil {
		return Primaries{}, err
	}
	green, err := toXY("green", d.Primaries.Green)
	if err != nil {
		return Primaries{}, err
	}
	blue, err := toXY("blue", d.Primaries.Blue)
	if err != nil {
		return Primaries{}, err
	}
	return Primaries{Red: red, Green: green, Blue: blue}, nil
}

func (d definition) whitepoint() (cie.XY, string, error) {
	wp := d.Whitepoint
	switch {
	case wp.Illuminant != "":
		observer := wp.Observer
		if observer == "" {
			observer = cie.Observer1931
		}
		xy, err := cie.LookupIlluminant(observer, wp.Illuminant)
		if err != nil {
			return cie.XY{}, "", err
		}
		return xy, wp.Illuminant, nil
	case len(wp.XY) == 2:
		return cie.XY{X: wp.XY[0], Y: wp.XY[1]}, "", nil
	default:
		return cie.XY{}, "", fmt.Errorf("whitepoint needs either an illuminant name or [x, y]")
	}
}

func (s curveSpec) build() (transfer.Function, error) {
	switch s.Type {
	case "", "linear":
		return transfer.Linear{}, nil
	case "gamma":
		if s.Gamma <= 0 {
			return nil, fmt.Errorf("gamma curve needs a positive exponent, got %g", s.Gamma)
		}
		return transfer.Gamma{Value: s.Gamma}, nil
	case "srgb":
		return transfer.SRGB{}, nil
	case "bt709":
		return transfer.BT709{}, nil
	case "logc":
		return transfer.NewLogC(s.Firmware, s.Method, s.EI)
	case "table":
		return transfer.NewTable("table", s.X, s.Y)
	default:
		return nil, fmt.Errorf("unknown curve type %q", s.Type)
	}
}
