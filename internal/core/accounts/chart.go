package accounts

import "github.com/SscSPs/bokforing_app/internal/core/domain"

var defaultChart = []struct{ code, name string }{
	{"1510", "Kundfordringar"},
	{"1630", "Avräkning för skatter och avgifter (skattekonto)"},
	{"1910", "Kassa"},
	{"1920", "PlusGiro"},
	{"1930", "Företagskonto"},
	{"1940", "Övriga bankkonton"},
	{"2081", "Aktiekapital"},
	{"2440", "Leverantörsskulder"},
	{"2611", "Utgående moms på försäljning inom Sverige, 25 %"},
	{"2621", "Utgående moms på försäljning inom Sverige, 12 %"},
	{"2631", "Utgående moms på försäljning inom Sverige, 6 %"},
	{"2641", "Debiterad ingående moms"},
	{"2650", "Redovisningskonto för moms"},
	{"2710", "Personalskatt"},
	{"2731", "Avräkning lagstadgade sociala avgifter"},
	{"2920", "Upplupna semesterlöner"},
	{"3001", "Försäljning inom Sverige, 25 % moms"},
	{"3002", "Försäljning inom Sverige, 12 % moms"},
	{"3003", "Försäljning inom Sverige, 6 % moms"},
	{"3740", "Öres- och kronutjämning"},
	{"4010", "Inköp material och varor"},
	{"5010", "Lokalhyra"},
	{"5410", "Förbrukningsinventarier"},
	{"6071", "Representation, avdragsgill"},
	{"6212", "Mobiltelefon"},
	{"6570", "Bankkostnader"},
	{"7210", "Löner till tjänstemän"},
	{"7285", "Semesterlöner till tjänstemän"},
	{"7321", "Skattefria traktamenten, Sverige"},
	{"7322", "Skattepliktiga traktamenten, Sverige"},
	{"7323", "Skattefria traktamenten, utlandet"},
	{"7331", "Skattefria bilersättningar"},
	{"7332", "Skattepliktiga bilersättningar"},
	{"7381", "Kostnader för fri bostad"},
	{"7382", "Kostnader för fria eller subventionerade måltider"},
	{"7383", "Kostnader för resor till och från arbetsplatsen"},
	{"7385", "Kostnader för fri bil"},
	{"7386", "Subventionerad ränta"},
	{"7387", "Kostnader för lånedatorer"},
	{"7389", "Övriga kostnader för förmåner"},
	{"7399", "Motkonto skattepliktiga förmåner"},
	{"7510", "Lagstadgade sociala avgifter"},
	{"7515", "Sociala avgifter på skattepliktiga förmåner"},
	{"8310", "Ränteintäkter från omsättningstillgångar"},
	{"8410", "Räntekostnader för långfristiga skulder"},
}

// DefaultChart returns the seeded chart of accounts. The migration seeds the
// same rows.
func DefaultChart() []domain.Account {
	chart := make([]domain.Account, 0, len(defaultChart))
	for _, a := range defaultChart {
		class, _ := ClassOf(a.code)
		chart = append(chart, domain.Account{Code: a.code, Name: a.name, Class: class})
	}
	return chart
}
