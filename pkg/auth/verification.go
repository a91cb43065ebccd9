package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// VerificationCode derives the six digit code an applicant confirms their
// email with. The code is stable for a (subject, email) pair under one secret.
func VerificationCode(secret, subject, email string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(subject))
	mac.Write([]byte{0})
	mac.Write([]byte(email))
	sum := mac.Sum(nil)
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(sum[:4])%1_000_000)
}
