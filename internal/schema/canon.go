package schema

import (
	"strconv"
	"strings"
	"unicode"
)

// Missing is the single sentinel for "no answer provided". It is distinct
// from every observed answer value and survives re-canonicalization.
const Missing = "Not Answered"

// yesNoFields fold loose affirmative/negative spellings into Yes/No.
var yesNoFields = map[Field]bool{
	FieldTrustAI:    true,
	FieldWantMoreAI: true,
}

// titleFields get display title-casing. Age ranges, free-text occupation and
// the raw rating value keep their original casing.
var titleFields = map[Field]bool{
	FieldGender:               true,
	FieldEducationLevel:       true,
	FieldEmploymentStatus:     true,
	FieldDeviceUseFrequency:   true,
	FieldAIKnowledge:          true,
	FieldBenefitOrHarm:        true,
	FieldThreatenFreedoms:     true,
	FieldEliminateProfessions: true,
	FieldOwnJobAffected:       true,
	FieldEthicalLimits:        true,
	FieldConsciousOneDay:      true,
	FieldNotAIApplication:     true,
	FieldMLAlgorithm:          true,
	FieldChatGPTType:          true,
}

// Canonicalize cleans one raw answer value for the given field.
// The transform is deterministic and idempotent: trimming and the missing
// sentinel apply to every field, then the per-field rule.
func Canonicalize(f Field, raw string) string {
	v := strings.TrimSpace(raw)
	switch v {
	case "", "nan", "None":
		return Missing
	}
	if v == Missing {
		return Missing
	}
	if yesNoFields[f] {
		return foldYesNo(v)
	}
	if titleFields[f] {
		return titleCase(v)
	}
	return v
}

// CanonicalizePassthrough cleans a value of an unrecognized column: trim and
// missing-sentinel only, no categorical rules.
func CanonicalizePassthrough(raw string) string {
	v := strings.TrimSpace(raw)
	switch v {
	case "", "nan", "None":
		return Missing
	}
	return v
}

func foldYesNo(v string) string {
	switch strings.ToLower(v) {
	case "yes", "y", "true", "1":
		return "Yes"
	case "no", "n", "false", "0":
		return "No"
	}
	// Anything else is a real answer, not forced into Yes/No.
	return v
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, matching how answer labels are displayed.
func titleCase(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	startWord := true
	for _, r := range v {
		switch {
		case unicode.IsSpace(r):
			startWord = true
			b.WriteRune(r)
		case startWord:
			b.WriteRune(unicode.ToUpper(r))
			startWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ParseRating parses the canonical AI_USAGE_RATING value into the derived
// numeric column. A non-numeric answer is absent, never an error.
func ParseRating(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == Missing {
		return 0, false
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}
