package validate

import (
	"errors"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

var ErrInvalidReferralCode = errors.New("invalid referral code")

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// ReferralCode is the member id followed by its Luhn check digit, so a
// mistyped code is rejected before any lookup.
func ReferralCode(memberID int64) string {
	_, code, err := goluhn.Calculate(strconv.FormatInt(memberID, 10))
	if err != nil {
		return ""
	}
	return code
}

// ParseReferralCode returns the member id carried by code.
func ParseReferralCode(code string) (int64, error) {
	if len(code) < 2 || !IsLuhn(code) {
		return 0, ErrInvalidReferralCode
	}
	id, err := strconv.ParseInt(code[:len(code)-1], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidReferralCode
	}
	return id, nil
}
