// backend/pkg/utils/session.go
package utils

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateProfileID derives a stable anonymous profile identifier from the
// caller fingerprint. It rotates hourly so a fingerprint alone cannot be
// tracked across long periods.
func GenerateProfileID(fingerprint string) string {
	hash := md5.Sum([]byte(fingerprint + fmt.Sprintf("%d", time.Now().Unix()/3600)))
	return hex.EncodeToString(hash[:])[:16]
}

// MD5Hash generates the MD5 hash of the input string, used for cache keys.
func MD5Hash(input string) string {
	hash := md5.Sum([]byte(input))
	return hex.EncodeToString(hash[:])
}

// GenerateRandomID generates a random hex ID of the given length.
func GenerateRandomID(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based ID
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)[:length]
}

// ValidateProfileID checks the anonymous profile ID format.
func ValidateProfileID(profileID string) bool {
	if len(profileID) != 16 {
		return false
	}

	_, err := hex.DecodeString(profileID)
	return err == nil
}
