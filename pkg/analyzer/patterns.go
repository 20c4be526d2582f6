package analyzer

// The recognizer catalogue. Patterns and base scores must stay in sync
// with the deployed detection behavior; changing a regex here changes
// which spans the service reports.

// predefinedRecognizers is the general-purpose baseline the registry
// starts from. Several of these are too noisy for Indian PII text and are
// disabled by the default configuration before the custom recognizers are
// added.
func predefinedRecognizers() []Recognizer {
	return []Recognizer{
		NewPatternRecognizer("email", "EMAIL_ADDRESS",
			`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`, 1.0,
			"email", "mail"),
		NewPatternRecognizer("url", "URL",
			`\bhttps?://[^\s]+`, 0.5),
		NewPatternRecognizer("ip", "IP_ADDRESS",
			`\b\d{1,3}(?:\.\d{1,3}){3}\b`, 0.6),
		NewPatternRecognizer("credit_card_generic", "CREDIT_CARD",
			`\b\d{13,19}\b`, 0.3, "card"),
		NewPatternRecognizer("date", "DATE_TIME",
			`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`, 0.6),
		NewPatternRecognizer("us_driver_license", "US_DRIVER_LICENSE",
			`\b[A-Z]{1,2}\d{5,8}\b`, 0.3, "license"),
		NewPatternRecognizer("uk_nhs", "UK_NHS",
			`\b\d{3}[ \-]?\d{3}[ \-]?\d{4}\b`, 0.5, "nhs"),
	}
}

// customRecognizers are the Indian PII recognizers plus the context-rule
// and model-entity based ones. Appended after the baseline is filtered.
func customRecognizers() []Recognizer {
	return []Recognizer{
		NewContextNameRecognizer(),
		NewModelPersonRecognizer(),
		NewModelLocationRecognizer(),

		// Strict 12-digit Aadhaar, optionally space-grouped 4-4-4. The
		// digit boundary keeps it from firing inside longer digit runs.
		NewDigitBoundedPatternRecognizer("aadhaar", "AADHAAR_NUMBER",
			`[1-9]\d{3}(?:\s?\d{4}){2}`, 0.95,
			"aadhaar", "uidai"),

		// Strict: exactly 16 digits, optional space/dash separators.
		NewPatternRecognizer("credit_card", "CREDIT_CARD",
			`\b(?:\d[ \-]*?){16}\b`, 0.9,
			"card", "visa", "mastercard"),

		NewPatternRecognizer("pan", "PAN_NUMBER",
			`\b[A-Z]{5}[0-9]{4}[A-Z]\b`, 1.0,
			"pan"),

		NewPatternRecognizer("phone", "PHONE_NUMBER",
			`\b[6-9]\d{9}\b`, 0.95,
			"phone", "mobile"),

		NewPatternRecognizer("iban", "IBAN_CODE",
			`\b[A-Z]{2}\d{2}[A-Z0-9]{10,30}\b`, 0.95,
			"bank", "account", "iban"),

		NewPatternRecognizer("employee", "EMPLOYEE_ID",
			`\b(?:EMP\-?\d{4,6}|ORG\-?\d{4,6})\b`, 0.95,
			"employee", "emp id"),

		NewPatternRecognizer("voter", "VOTER_ID",
			`\b[A-Z]{3}[0-9]{7}\b`, 0.95,
			"voter"),

		NewPatternRecognizer("passport", "PASSPORT_NUMBER",
			`\b[A-Z][0-9]{7}\b`, 0.9,
			"passport"),

		NewPatternRecognizer("dl", "DRIVING_LICENSE",
			`\b[A-Z]{2}[0-9]{2}[0-9]{11}\b`, 0.9,
			"dl", "license"),

		NewPatternRecognizer("vehicle", "VEHICLE_REGISTRATION",
			`\b[A-Z]{2}[0-9]{2}[A-Z]{1,2}[0-9]{4}\b`, 0.95),

		NewPatternRecognizer("pincode", "PINCODE",
			`\b[1-9][0-9]{5}\b`, 0.9),

		NewPatternRecognizer("upi", "UPI_ID",
			`\b[\w.\-]+@[a-zA-Z]+\b`, 0.85,
			"upi"),

		NewPatternRecognizer("indian_locations", "LOCATION",
			`\b(Bangalore|Bengaluru|Mumbai|Delhi|Chennai|Hyderabad|Kolkata|Pune|Karnataka|Tamil Nadu|Maharashtra|India)\b`,
			0.85),
	}
}
