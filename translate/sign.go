package translate

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand/v2"
	"strconv"
)

// Salt bounds required by the API. The official documentation states the
// range as [32768, 65536]; whether the upper bound is really inclusive is
// unclear, so salts are drawn from the half-open [32768, 65536).
const (
	saltBase = 32768
	saltSpan = 32768
)

// newSalt returns a fresh random salt.
func newSalt() int {
	return saltBase + rand.IntN(saltSpan)
}

// sign computes the request signature: the lowercase hex MD5 of
// appid + query + salt + appkey, all UTF-8.
func sign(appID, query string, salt int, appKey string) string {
	sum := md5.Sum([]byte(appID + query + strconv.Itoa(salt) + appKey))
	return hex.EncodeToString(sum[:])
}
