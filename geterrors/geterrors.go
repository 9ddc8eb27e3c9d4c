// Package geterrors accumulates missing-key errors while reading settings
// from a getter function, so a caller can report every missing key at once.
package geterrors

import (
	"fmt"
	"strings"
)

func WrapFunc(get func(string) string) ErrGetter {
	return ErrGetter{get: get}
}

type ErrGetter struct {
	get         func(string) string
	missingKeys []string
}

// Get returns the value for key, recording the key when it is unset.
func (g *ErrGetter) Get(key string) string {
	val := g.get(key)
	if len(val) == 0 {
		g.missingKeys = append(g.missingKeys, key)
	}
	return val
}

// GetOr returns the value for key, or fallback when it is unset. Optional
// keys are never recorded as missing.
func (g *ErrGetter) GetOr(key, fallback string) string {
	val := g.get(key)
	if len(val) == 0 {
		return fallback
	}
	return val
}

func (g *ErrGetter) Err(message string) error {
	if len(g.missingKeys) == 0 {
		return nil
	}
	return fmt.Errorf(
		"%s: %s",
		message, strings.Join(g.missingKeys, ", "),
	)
}
