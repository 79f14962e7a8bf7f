// Package password implements argon2id hashing in the standard
// $argon2id$v=19$m=..,t=..,p=..$<salt>$<hash> encoded form.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	memory   = 64 * 1024
	timeCost = 3
	threads  = 2
	saltLen  = 16
	keyLen   = 32
)

// Hash derives an encoded argon2id hash with a fresh random salt.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, keyLen)
	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches the encoded hash. Any malformed
// encoding verifies as false rather than erroring.
func Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}

	m, t, p, err := parseParams(parts[3])
	if err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	check := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, check) == 1
}

func parseParams(raw string) (m uint32, t uint32, p uint8, err error) {
	params := strings.Split(raw, ",")
	if len(params) != 3 {
		return 0, 0, 0, errors.New("malformed params")
	}

	ms, ok := strings.CutPrefix(params[0], "m=")
	if !ok {
		return 0, 0, 0, errors.New("malformed params")
	}
	ts, ok := strings.CutPrefix(params[1], "t=")
	if !ok {
		return 0, 0, 0, errors.New("malformed params")
	}
	ps, ok := strings.CutPrefix(params[2], "p=")
	if !ok {
		return 0, 0, 0, errors.New("malformed params")
	}

	m64, err := strconv.ParseUint(ms, 10, 32)
	if err != nil {
		return 0, 0, 0, err
	}
	t64, err := strconv.ParseUint(ts, 10, 32)
	if err != nil {
		return 0, 0, 0, err
	}
	p64, err := strconv.ParseUint(ps, 10, 8)
	if err != nil {
		return 0, 0, 0, err
	}
	return uint32(m64), uint32(t64), uint8(p64), nil
}
