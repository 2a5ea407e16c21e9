package classification

import "github.com/Veraticus/aashto-classifier/internal/model"

// GranularMaxPassingNo200 is the highest No.200 passing percentage of a granular material.
const GranularMaxPassingNo200 = 35

// MaterialTypeFor splits on No.200 passing alone. It does not consult the
// classification and can disagree with it for values between 35 and 36.
func MaterialTypeFor(passingNo200 float64) model.MaterialType {
	if passingNo200 <= GranularMaxPassingNo200 {
		return model.MaterialGranular
	}
	return model.MaterialSiltClay
}

// ConstituentsFor returns the significant constituent materials of a group.
func ConstituentsFor(code model.Code) string {
	switch code {
	case model.CodeA1a, model.CodeA1b:
		return "Stone fragments, Gravel and Sand"
	case model.CodeA3:
		return "Fine sand"
	case model.CodeA24, model.CodeA25, model.CodeA26, model.CodeA27:
		return "Silty or Clayey Gravel and Sand"
	case model.CodeA4, model.CodeA5:
		return "Silty soils"
	case model.CodeA6, model.CodeA7:
		return "Clayey soils"
	default:
		return model.ConstituentsUnknown
	}
}

// Group returns the AASHTO group family of a code ("A-1", "A-2", ...).
func Group(code model.Code) string {
	switch code {
	case model.CodeA1a, model.CodeA1b:
		return "A-1"
	case model.CodeA24, model.CodeA25, model.CodeA26, model.CodeA27:
		return "A-2"
	case model.CodeUnclassifiable, "":
		return ""
	default:
		return code.String()
	}
}

// GroupMaterial returns the material type a code's group belongs to in the
// AASHTO table. Unlike MaterialTypeFor it is keyed on the code, not on No.200.
func GroupMaterial(code model.Code) model.MaterialType {
	switch code {
	case model.CodeA1a, model.CodeA1b, model.CodeA3,
		model.CodeA24, model.CodeA25, model.CodeA26, model.CodeA27:
		return model.MaterialGranular
	case model.CodeA4, model.CodeA5, model.CodeA6, model.CodeA7:
		return model.MaterialSiltClay
	default:
		return ""
	}
}
