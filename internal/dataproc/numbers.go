// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dataproc

import "fmt"

// Number is the set of types the numeric helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Discount thresholds and rates.
const (
	HighPriceThreshold = 100
	MidPriceThreshold  = 50

	HighPriceRate = 0.9
	MidPriceRate  = 0.95
)

// ProcessData doubles every positive value and replaces the rest with zero.
// The result has the same length as data and a nil input yields an empty,
// non-nil slice.
func ProcessData[T Number](data []T) []T {
	result := make([]T, len(data))
	for i, item := range data {
		if item > 0 {
			result[i] = item * 2
		}
	}

	return result
}

// Average returns the arithmetic mean of numbers.
func Average[T Number](numbers []T) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: average of no numbers", ErrEmptyInput)
	}

	var total float64
	for _, n := range numbers {
		total += float64(n)
	}

	return total / float64(len(numbers)), nil
}

// Discount applies 10% off prices above 100 and 5% off prices above 50.
// Lower prices are returned unchanged.
func Discount(price float64) float64 {
	switch {
	case price > HighPriceThreshold:
		return price * HighPriceRate
	case price > MidPriceThreshold:
		return price * MidPriceRate
	default:
		return price
	}
}
