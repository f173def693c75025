package payroll

import "strings"

// BankCode is the WPS routing code of a UAE bank. Unknown bank names map
// to BankCodeUnknown rather than failing entry generation.
type BankCode string

const BankCodeUnknown BankCode = "UNKNOWN"

var bankCodes = map[string]BankCode{
	"emirates nbd":              "026",
	"abu dhabi commercial bank": "003",
	"first abu dhabi bank":      "035",
	"mashreq bank":              "046",
	"dubai islamic bank":        "802",
	"abu dhabi islamic bank":    "057",
	"commercial bank of dubai":  "022",
	"rakbank":                   "034",
	"sharjah islamic bank":      "804",
	"emirates islamic bank":     "805",
	"national bank of fujairah": "038",
	"united arab bank":          "049",
	"ajman bank":                "813",
	"al hilal bank":             "530",
	"hsbc bank middle east":     "020",
	"standard chartered bank":   "008",
	"citibank":                  "024",
}

// LookupBankCode resolves an employee's bank name to its WPS routing code.
// Matching is case-insensitive on the trimmed name.
func LookupBankCode(bankName string) BankCode {
	if code, ok := bankCodes[strings.ToLower(strings.TrimSpace(bankName))]; ok {
		return code
	}
	return BankCodeUnknown
}
