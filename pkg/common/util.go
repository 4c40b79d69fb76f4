package common

import (
	"os"
	"strconv"
	"strings"
	"testing"
)

func IsTestEnv() bool {
	return testing.Testing()
}
func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range len(items) {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := range len(items) {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	return Reducer(parts, func(acc []string, p string) []string {
		if p = strings.TrimSpace(p); p != "" {
			acc = append(acc, p)
		}
		return acc
	}, []string{})
}

func EnvString(key string, fallback string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func EnvInt(key string, fallback int) (int, error) {
	v := EnvString(key, "")
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func EnvFloat(key string, fallback float64) (float64, error) {
	v := EnvString(key, "")
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}

func EnvBool(key string, fallback bool) (bool, error) {
	v := EnvString(key, "")
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}
