package schema

import "fmt"

// Field identifies one canonical survey dimension. Raw inputs may name the
// same dimension either by the full question text (form exports) or by the
// warehouse-style identifier; both resolve to the same Field.
type Field string

const (
	FieldAgeRange             Field = "AGE_RANGE"
	FieldGender               Field = "GENDER"
	FieldEducationLevel       Field = "EDUCATION_LEVEL"
	FieldEmploymentStatus     Field = "EMPLOYMENT_STATUS"
	FieldOccupation           Field = "OCCUPATION"
	FieldDeviceUseFrequency   Field = "DEVICE_USE_FREQUENCY"
	FieldAIKnowledge          Field = "AI_KNOWLEDGE"
	FieldTrustAI              Field = "TRUST_AI"
	FieldBenefitOrHarm        Field = "BENEFIT_OR_HARM"
	FieldAIUsageRating        Field = "AI_USAGE_RATING"
	FieldWantMoreAI           Field = "WANT_MORE_AI"
	FieldThreatenFreedoms     Field = "THREATEN_FREEDOMS"
	FieldEliminateProfessions Field = "ELIMINATE_PROFESSIONS"
	FieldOwnJobAffected       Field = "OWN_JOB_AFFECTED"
	FieldEthicalLimits        Field = "ETHICAL_LIMITS"
	FieldConsciousOneDay      Field = "CONSCIOUS_ONE_DAY"
	FieldNotAIApplication     Field = "NOT_AI_APPLICATION"
	FieldMLAlgorithm          Field = "ML_ALGORITHM"
	FieldChatGPTType          Field = "CHATGPT_TYPE"
)

// RatingNumColumn is the derived numeric column name exposed in reports.
const RatingNumColumn = "AI_USAGE_RATING_NUM"

// questionAliases maps the long natural-language header of each survey
// question to its canonical field. Lookup is exact and case-sensitive.
var questionAliases = map[string]Field{
	"What is your age range?":                         FieldAgeRange,
	"What is your gender?":                            FieldGender,
	"What is your education level?":                   FieldEducationLevel,
	"What is your employment status?":                 FieldEmploymentStatus,
	"What is your occupation? (optional)":             FieldOccupation,
	"How often do you use technological devices?":     FieldDeviceUseFrequency,
	"How much knowledge do you have about artificial intelligence (AI) technologies?":                      FieldAIKnowledge,
	"Do you generally trust artificial intelligence (AI)?":                                                 FieldTrustAI,
	"Do you think artificial intelligence (AI) will be generally beneficial or harmful to humanity?":       FieldBenefitOrHarm,
	"Please rate how actively you use AI-powered products in your daily life on a scale from 1 to 5.":      FieldAIUsageRating,
	"Would you like to use more AI products in the future?":                                                FieldWantMoreAI,
	"I think artificial intelligence (AI) could threaten individual freedoms.":                             FieldThreatenFreedoms,
	"Could artificial intelligence (AI) completely eliminate some professions?":                            FieldEliminateProfessions,
	"Do you think your own job could be affected by artificial intelligence (AI)?":                         FieldOwnJobAffected,
	"Do you believe that artificial intelligence (AI) should be limited by ethical rules?":                 FieldEthicalLimits,
	"Could artificial intelligence (AI) one day become conscious like humans?":                             FieldConsciousOneDay,
	"Which of the following do you think is NOT an artificial intelligence (AI) application?":              FieldNotAIApplication,
	"Which of the following is a machine learning algorithm used in the field of artificial intelligence?": FieldMLAlgorithm,
	"The artificial intelligence application called 'ChatGPT' is an example of which type of AI system?":   FieldChatGPTType,
}

// All lists every canonical field in presentation order.
func All() []Field {
	return []Field{
		FieldAgeRange, FieldGender, FieldEducationLevel, FieldEmploymentStatus,
		FieldOccupation, FieldDeviceUseFrequency, FieldAIKnowledge, FieldTrustAI,
		FieldBenefitOrHarm, FieldAIUsageRating, FieldWantMoreAI,
		FieldThreatenFreedoms, FieldEliminateProfessions, FieldOwnJobAffected,
		FieldEthicalLimits, FieldConsciousOneDay, FieldNotAIApplication,
		FieldMLAlgorithm, FieldChatGPTType,
	}
}

var aliasTable map[string]Field

func init() {
	t, err := buildAliasTable()
	if err != nil {
		panic(err)
	}
	aliasTable = t
}

// buildAliasTable merges the long-question and warehouse forms and rejects
// ambiguous aliases so a bad edit fails at startup, not per-row.
func buildAliasTable(extra ...map[string]Field) (map[string]Field, error) {
	t := make(map[string]Field, 2*len(questionAliases))
	add := func(alias string, f Field) error {
		if prev, ok := t[alias]; ok && prev != f {
			return fmt.Errorf("ambiguous column alias %q: %s vs %s", alias, prev, f)
		}
		t[alias] = f
		return nil
	}
	for q, f := range questionAliases {
		if err := add(q, f); err != nil {
			return nil, err
		}
	}
	for _, f := range All() {
		if err := add(string(f), f); err != nil {
			return nil, err
		}
	}
	for _, m := range extra {
		for a, f := range m {
			if err := add(a, f); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// NormalizeName resolves a raw column name to its canonical field.
// Unknown names are not an error: the caller keeps them as pass-through
// columns under their original name.
func NormalizeName(raw string) (Field, bool) {
	f, ok := aliasTable[raw]
	return f, ok
}

// Question returns the long-form question text for a field, if known.
func Question(f Field) string {
	for q, qf := range questionAliases {
		if qf == f {
			return q
		}
	}
	return ""
}
