package colorspace

import (
	"github.com/wudi/colorkit/algebra"
	"github.com/wudi/colorkit/cie"
	"github.com/wudi/colorkit/transfer"
)

// Names of the built-in colorspaces.
const (
	AlexaWideGamutRGB = "ALEXA Wide Gamut RGB"
	SRGB              = "sRGB"
	BT709             = "ITU-R BT.709"
	AdobeRGB1998      = "Adobe RGB (1998)"
	ACES2065_1        = "ACES2065-1"
)

func init() {
	d65 := mustIlluminant("D65")

	// ARRI publishes the ALEXA Wide Gamut matrix; the registry carries
	// it verbatim rather than the derived one.
	// http://www.arri.com/?eID=registration&file_uid=8026
	alexa := must(NewWithMatrix(
		AlexaWideGamutRGB,
		Primaries{
			Red:   cie.XY{X: 0.6840, Y: 0.3130},
			Green: cie.XY{X: 0.2210, Y: 0.8480},
			Blue:  cie.XY{X: 0.0861, Y: -0.1020},
		},
		d65, "D65",
		algebra.Matrix3{
			0.638008, 0.214704, 0.097744,
			0.291954, 0.823841, -0.115795,
			0.002798, -0.067034, 1.153294,
		},
		mustLogC(transfer.NewLogC(transfer.FirmwareSUP3, transfer.MethodLinearSceneExposureFactor, 800)),
	))

	srgb := must(New(
		SRGB,
		Primaries{
			Red:   cie.XY{X: 0.64, Y: 0.33},
			Green: cie.XY{X: 0.30, Y: 0.60},
			Blue:  cie.XY{X: 0.15, Y: 0.06},
		},
		d65, "D65",
		transfer.SRGB{},
	))

	bt709 := must(New(
		BT709,
		Primaries{
			Red:   cie.XY{X: 0.64, Y: 0.33},
			Green: cie.XY{X: 0.30, Y: 0.60},
			Blue:  cie.XY{X: 0.15, Y: 0.06},
		},
		d65, "D65",
		transfer.BT709{},
	))

	adobe := must(New(
		AdobeRGB1998,
		Primaries{
			Red:   cie.XY{X: 0.64, Y: 0.33},
			Green: cie.XY{X: 0.21, Y: 0.71},
			Blue:  cie.XY{X: 0.15, Y: 0.06},
		},
		d65, "D65",
		transfer.Gamma{Value: 563.0 / 256.0},
	))

	// ACES white is close to, but not, D60.
	aces := must(New(
		ACES2065_1,
		Primaries{
			Red:   cie.XY{X: 0.73470, Y: 0.26530},
			Green: cie.XY{X: 0.00000, Y: 1.00000},
			Blue:  cie.XY{X: 0.00010, Y: -0.07700},
		},
		cie.XY{X: 0.32168, Y: 0.33767}, "ACES",
		transfer.Linear{},
	))

	for _, c := range []Colorspace{alexa, srgb, bt709, adobe, aces} {
		defaultRegistry.Register(c)
	}
}

func mustIlluminant(name string) cie.XY {
	xy, err := cie.LookupIlluminant(cie.Observer1931, name)
	if err != nil {
		panic(err)
	}
	return xy
}

func mustLogC(l *transfer.LogC, err error) transfer.Function {
	if err != nil {
		panic(err)
	}
	return l
}

func must(c Colorspace, err error) Colorspace {
	if err != nil {
		panic(err)
	}
	return c
}
