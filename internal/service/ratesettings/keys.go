package ratesettings

import (
	"fmt"
	"strconv"
	"strings"
)

// Ключи таблицы rate_settings
const (
	KeyGroup1Basic   = "protection_group1_basic"
	KeyGroup1Smart   = "protection_group1_smart"
	KeyGroup1Premium = "protection_group1_premium"

	KeyYoungDriverDaily           = "driver_young_daily"
	KeyAdditionalDriverDaily      = "driver_additional_daily"
	KeyYoungAdditionalDriverDaily = "driver_young_additional_daily"

	KeyDropoffFeeDefault = "dropoff_fee_default"
	KeySecurityDeposit   = "security_deposit"

	dropoffPairPrefix = "dropoff_fee:"
)

// cacheKey ключ кэша со всеми настройками
const cacheKey = "rate_settings"

// DropoffPairKey ключ надбавки за возврат в другую локацию для пары from -> to
func DropoffPairKey(from, to int64) string {
	return fmt.Sprintf("%s%d:%d", dropoffPairPrefix, from, to)
}

// parseDropoffPairKey разбирает ключ вида dropoff_fee:<from>:<to>
func parseDropoffPairKey(key string) (from, to int64, ok bool) {
	if !strings.HasPrefix(key, dropoffPairPrefix) {
		return 0, 0, false
	}
	parts := strings.Split(strings.TrimPrefix(key, dropoffPairPrefix), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	from, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	to, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return from, to, true
}
