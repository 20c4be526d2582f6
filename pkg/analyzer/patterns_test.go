package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRecognizer(t *testing.T, name string) Recognizer {
	t.Helper()
	for _, r := range customRecognizers() {
		if r.Name() == name {
			return r
		}
	}
	for _, r := range predefinedRecognizers() {
		if r.Name() == name {
			return r
		}
	}
	t.Fatalf("recognizer %s not found", name)
	return nil
}

func TestPatternRecognizersDetect(t *testing.T) {
	testCases := []struct {
		recognizer string
		text       string
		entityType string
		start      int
		end        int
		score      float64
	}{
		{"aadhaar", "My number is 2345 6789 1234", "AADHAAR_NUMBER", 13, 27, 0.95},
		{"aadhaar", "5485 5000 8000", "AADHAAR_NUMBER", 0, 14, 0.95},
		{"credit_card", "5485500080001234", "CREDIT_CARD", 0, 16, 0.9},
		{"credit_card", "5485-5000-8000-1234", "CREDIT_CARD", 0, 19, 0.9},
		{"pan", "The PAN is ABCDE1234F", "PAN_NUMBER", 11, 21, 1.0},
		{"phone", "Call me at 9876543210", "PHONE_NUMBER", 11, 21, 0.95},
		{"iban", "IBAN: GB29NWBK60161331926819", "IBAN_CODE", 6, 28, 0.95},
		{"employee", "ID EMP5566", "EMPLOYEE_ID", 3, 10, 0.95},
		{"employee", "ID EMP-5566", "EMPLOYEE_ID", 3, 11, 0.95},
		{"employee", "ID ORG-445566", "EMPLOYEE_ID", 3, 13, 0.95},
		{"voter", "Voter ID: ZYX1234567", "VOTER_ID", 10, 20, 0.95},
		{"passport", "Passport M1234567", "PASSPORT_NUMBER", 9, 17, 0.9},
		{"dl", "DL MH1420110062821", "DRIVING_LICENSE", 3, 18, 0.9},
		{"vehicle", "Vehicle KA01AB1234", "VEHICLE_REGISTRATION", 8, 18, 0.95},
		{"pincode", "Pincode 560001", "PINCODE", 8, 14, 0.9},
		{"upi", "Pay via upi_user@okaxis", "UPI_ID", 8, 23, 0.85},
		{"indian_locations", "I live in Bangalore", "LOCATION", 10, 19, 0.85},
		{"indian_locations", "Tamil Nadu is a state", "LOCATION", 0, 10, 0.85},
		{"email", "Email me at test@example.com", "EMAIL_ADDRESS", 12, 28, 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.recognizer+"/"+tc.text, func(t *testing.T) {
			spans := findRecognizer(t, tc.recognizer).Recognize(tc.text, nil)
			require.Len(t, spans, 1)
			assert.Equal(t, tc.entityType, spans[0].EntityType)
			assert.Equal(t, tc.start, spans[0].Start)
			assert.Equal(t, tc.end, spans[0].End)
			assert.Equal(t, tc.score, spans[0].Score)
		})
	}
}

func TestPatternRecognizersReject(t *testing.T) {
	testCases := []struct {
		recognizer string
		text       string
	}{
		{"pan", "This is NOTAPAN123."},
		{"pan", "ABC1234F"},
		{"phone", "Call me at 1234567890"}, // leading digit must be 6-9
		{"phone", "98765432"},
		{"pincode", "012345"}, // leading digit must be 1-9
		{"voter", "ZY1234567"},
		{"passport", "MM123456"},
		{"employee", "ID XYZ5566"},
		{"upi", "no handle here"},
		{"indian_locations", "I live in Paris"},
		{"email", "not@anemail"},
	}

	for _, tc := range testCases {
		t.Run(tc.recognizer+"/"+tc.text, func(t *testing.T) {
			spans := findRecognizer(t, tc.recognizer).Recognize(tc.text, nil)
			assert.Empty(t, spans)
		})
	}
}

func TestAadhaarRequiresDigitBoundary(t *testing.T) {
	// A 12-digit group inside a longer digit run is not an Aadhaar number.
	aadhaar := findRecognizer(t, "aadhaar")

	assert.Empty(t, aadhaar.Recognize("91234 5678 9012", nil))
	assert.Empty(t, aadhaar.Recognize("2345 6789 12345", nil))
}

func TestAadhaarCompactForm(t *testing.T) {
	aadhaar := findRecognizer(t, "aadhaar")

	spans := aadhaar.Recognize("234567891234", nil)
	require.Len(t, spans, 1)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 12, spans[0].End)
}

func TestPatternRecognizerMultipleMatches(t *testing.T) {
	phone := findRecognizer(t, "phone")

	spans := phone.Recognize("Call 9876543210 or 6123456789", nil)
	require.Len(t, spans, 2)
	assert.Equal(t, 5, spans[0].Start)
	assert.Equal(t, 19, spans[1].Start)
}

func TestPatternRecognizerRuneOffsets(t *testing.T) {
	// Offsets count code points, not bytes; a multi-byte rune before the
	// match must not shift them.
	phone := findRecognizer(t, "phone")

	text := "José's number is at 9876543210"
	spans := phone.Recognize(text, nil)
	require.Len(t, spans, 1)
	assert.Equal(t, 20, spans[0].Start)
	assert.Equal(t, 30, spans[0].End)
	assert.Equal(t, "9876543210", string([]rune(text)[spans[0].Start:spans[0].End]))
}

func TestPatternRecognizerContextWordsAreInert(t *testing.T) {
	// Context keywords are descriptor metadata only; matching does not
	// consult them.
	pan := findRecognizer(t, "pan").(*PatternRecognizer)
	require.NotEmpty(t, pan.ContextWords())

	spans := pan.Recognize("ABCDE1234F with no context keyword anywhere", nil)
	require.Len(t, spans, 1)
	assert.Equal(t, 1.0, spans[0].Score)
}
