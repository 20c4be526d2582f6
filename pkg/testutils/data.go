package testutils

// Sample texts containing the PII variants the recognizer catalogue
// covers. Offsets are not fixed here; tests that need exact offsets
// construct their own inputs.
var PIISampleTexts = []string{
	"My Aadhaar number is 2345 6789 1234 and my phone is 9876543210.",
	"The PAN is ABCDE1234F, issued in Mumbai.",
	"Name: Priya Sharma, Employee ID EMP-5566.",
	"Voter ID: ZYX1234567. Passport: M1234567.",
	"Pay via upi_user@okaxis or email test@example.com.",
	"Vehicle KA01AB1234 registered at pincode 560001.",
	"IBAN: GB29NWBK60161331926819.",
	"Driving license MH1420110062821.",
	"I live in Bangalore, Karnataka.",
}
