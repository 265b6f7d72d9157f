package utils

import (
	"fmt"
	"time"
)

func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return fmt.Sprintf("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return fmt.Sprintf("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return fmt.Sprintf("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return fmt.Sprintf("%.*f K", decimals, number/1000)
	}

	return fmt.Sprintf("%.*f ", decimals, number)
}

// HashRate formats the amount of hashes done over elapsed as "12.34 MH/s"
func HashRate(hashes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return SiUnits(0, 2) + "H/s"
	}
	return SiUnits(float64(hashes)/elapsed.Seconds(), 2) + "H/s"
}
