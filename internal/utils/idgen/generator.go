package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const idCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureID returns an identifier of the form "<prefix>_<random>",
// where the random part has the requested length drawn from [0-9a-z].
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("id length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(idCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate random id: %w", err)
		}
		buf[i] = idCharset[n.Int64()]
	}

	return fmt.Sprintf("%s_%s", prefix, string(buf)), nil
}

// GenerateDialogueID returns a public dialogue identifier.
func GenerateDialogueID() (string, error) {
	return GenerateSecureID("dlg", 16)
}

// GenerateMessageID returns a public message identifier.
func GenerateMessageID() (string, error) {
	return GenerateSecureID("msg", 16)
}
