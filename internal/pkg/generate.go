package pkg

import (
	"crypto/rand"
	"math/big"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

// GenerateRoomCode - generates a short human-enterable room code,
// 6 uppercase alphanumeric characters.
func GenerateRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeAlphabet))))
		if err != nil {
			return ""
		}
		code[i] = roomCodeAlphabet[n.Int64()]
	}

	return string(code)
}
