package password

import "golang.org/x/crypto/bcrypt"

// Cost is the fixed bcrypt work factor for all new hashes.
const Cost = 12

// Hash produces a salted one-way digest of plain. Two calls with the same
// input yield different digests; the salt is embedded in the output.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches digest under the salt and cost
// embedded in the digest. A malformed digest verifies as false.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
