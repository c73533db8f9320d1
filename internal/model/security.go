package model

import "strings"

// Market identifies the exchange a security trades on.
type Market int

const (
	MarketUnqualified Market = iota
	MarketShenzhen
	MarketShanghai
	MarketHongKong
)

func (m Market) String() string {
	switch m {
	case MarketShenzhen:
		return "SZ"
	case MarketShanghai:
		return "SH"
	case MarketHongKong:
		return "HK"
	default:
		return "UNQUALIFIED"
	}
}

// SecurityID is a canonical (market, code) pair. It is created by
// Normalize and never mutated afterwards.
type SecurityID struct {
	Market Market
	Code   string
}

// String returns the upstream secid form: "0.000977" for Shenzhen,
// "1.600519" for Shanghai. Hong Kong and unqualified codes carry no
// market prefix and pass through as-is.
func (s SecurityID) String() string {
	switch s.Market {
	case MarketShenzhen:
		return "0." + s.Code
	case MarketShanghai:
		return "1." + s.Code
	default:
		return s.Code
	}
}

// ExchangeSymbol returns the exchange-prefix form some quote feeds
// take: "SH600519" for Shanghai, "SZ000977" for Shenzhen. Hong Kong and
// unqualified codes pass through bare.
func (s SecurityID) ExchangeSymbol() string {
	switch s.Market {
	case MarketShenzhen:
		return "SZ" + s.Code
	case MarketShanghai:
		return "SH" + s.Code
	default:
		return s.Code
	}
}

// Normalize maps a user-supplied security code to a SecurityID.
//
// Accepted shapes, in order:
//   - "0.000977" / "1.600519"  — already-canonical secid, returned as-is
//   - "000977.SZ" / "600519.sh" — suffix form, case-insensitive
//   - "SZ000977" / "SH600519"  — exchange-prefix form
//   - "600519" / "000977"      — bare 6-digit, 6xxxxx → Shanghai, else Shenzhen
//   - "01810"                  — bare 5-digit, Hong Kong, left unqualified
//
// Normalize is idempotent: feeding a SecurityID's String() back in yields
// the same SecurityID. Anything else fails with InvalidIdentifierError.
func Normalize(input string) (SecurityID, error) {
	code := strings.TrimSpace(input)

	if left, right, found := strings.Cut(code, "."); found {
		if (left == "0" || left == "1") && allDigits(right) {
			m := MarketShenzhen
			if left == "1" {
				m = MarketShanghai
			}
			return SecurityID{Market: m, Code: right}, nil
		}
		if allDigits(left) {
			switch strings.ToUpper(right) {
			case "SZ":
				return SecurityID{Market: MarketShenzhen, Code: left}, nil
			case "SH":
				return SecurityID{Market: MarketShanghai, Code: left}, nil
			}
		}
		return SecurityID{}, &InvalidIdentifierError{Input: input}
	}

	if allDigits(code) {
		// 5-digit codes are Hong Kong listings; the upstream feed takes
		// them without a market prefix.
		if len(code) == 5 {
			return SecurityID{Market: MarketHongKong, Code: code}, nil
		}
		if strings.HasPrefix(code, "6") {
			return SecurityID{Market: MarketShanghai, Code: code}, nil
		}
		return SecurityID{Market: MarketShenzhen, Code: code}, nil
	}

	if len(code) == 8 {
		prefix := strings.ToUpper(code[:2])
		if digits := code[2:]; allDigits(digits) {
			switch prefix {
			case "SZ":
				return SecurityID{Market: MarketShenzhen, Code: digits}, nil
			case "SH":
				return SecurityID{Market: MarketShanghai, Code: digits}, nil
			}
		}
	}

	return SecurityID{}, &InvalidIdentifierError{Input: input}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
