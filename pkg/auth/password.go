package auth

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lower   = "abcdefghijkmnopqrstuvwxyz"
	upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits  = "23456789"
	special = "@#$%&*"

	TemporaryPasswordLength = 12
)

// GeneratePassword returns a random password of length characters holding at
// least one lower case letter, one upper case letter, one digit and one of
// @#$%&*.
func GeneratePassword(length int) (string, error) {
	classes := []string{lower, upper, digits, special}
	if length < len(classes) {
		return "", errors.New("password length too short")
	}
	all := lower + upper + digits + special

	out := make([]byte, 0, length)
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}
	return string(out), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}
