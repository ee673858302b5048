package models

// Supported currency codes
const (
	USD = "USD"
	EUR = "EUR"
	JPY = "JPY"
	GBP = "GBP"
	AUD = "AUD"
	CAD = "CAD"
	CHF = "CHF"
	CNY = "CNY"
	HKD = "HKD"
	NZD = "NZD"
	KRW = "KRW"
	INR = "INR"
	RUB = "RUB"
	BRL = "BRL"
	ZAR = "ZAR"
	SGD = "SGD"
	MXN = "MXN"
	IDR = "IDR"
	TRY = "TRY"
	SAR = "SAR"
)

// supportedCurrencies is the closed set offered by both selectors, in display order.
var supportedCurrencies = []string{
	USD, EUR, JPY, GBP, AUD, CAD, CHF, CNY, HKD,
	NZD, KRW, INR, RUB, BRL, ZAR, SGD, MXN, IDR,
	TRY, SAR,
}

var supportedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		set[c] = struct{}{}
	}
	return set
}()

// Currencies returns the supported currency codes in display order.
func Currencies() []string {
	out := make([]string, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupportedCurrency reports whether code belongs to the supported set.
// Matching is case-sensitive.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedSet[code]
	return ok
}
