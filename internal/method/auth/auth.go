// Package auth verifies the request token of the method API. Tokens are not
// issued here; callers derive them from shared salts and this package only
// checks the digest.
package auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"scoreapi/internal/method/models"
)

// adminTokenLayout formats the current UTC hour into the admin token key,
// so admin tokens rotate hourly.
const adminTokenLayout = "2006010215"

// Verify compares the supplied token with the expected salted SHA-512
// digest. Admin identities authenticate with a time-based digest, everyone
// else with account+login. The comparison is constant time.
func Verify(req *models.MethodRequest, now time.Time, salt, adminSalt string) bool {
	var key string
	if req.IsAdmin() {
		key = now.UTC().Format(adminTokenLayout) + adminSalt
	} else {
		key = req.Account + req.Login + salt
	}
	sum := sha512.Sum512([]byte(key))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Token)) == 1
}
