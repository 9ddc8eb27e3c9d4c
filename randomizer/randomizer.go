// Package randomizer is used for generating random strings.
package randomizer

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// StringRunes generates a random string of letters of a specified length.
func StringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(letterRunes))))
		if err != nil {
			panic(err)
		}
		b[i] = letterRunes[idx.Int64()]
	}
	return string(b)
}

type Randomizer struct{}

// HexString generates n lower-case hex characters from crypto/rand. Used
// for generated credentials, so weaker randomness sources are not
// acceptable here.
func (r Randomizer) HexString(n int) string {
	b := make([]byte, (n+1)/2)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)[:n]
}

// StringRunes generates a random string of letters from a Randomizer
// struct.
func (r Randomizer) StringRunes(n int) string {
	return StringRunes(n)
}
