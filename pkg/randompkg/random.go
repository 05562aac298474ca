// Package randompkg provides functionality for generating random application common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/pkg/addresspkg"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	hexchars = "0123456789abcdef"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Address generates a random account address in canonical form.
func Address() string {
	var sb strings.Builder

	sb.WriteString("0x")

	for i := 0; i < 40; i++ {
		_ = sb.WriteByte(hexchars[Intn(len(hexchars))])
	}

	addr, ok := addresspkg.Normalize(sb.String())
	if !ok {
		panic("randompkg: generated an invalid address")
	}

	return addr
}

// AmountBetween generates a random amount of money between min and max rounded to 4 decimals.
func AmountBetween(min, max float64) string {
	return decimal.NewFromFloat(FloatBetween(min, max)).String()
}

// Description generates a random transaction description.
func Description() string {
	return String(12)
}
