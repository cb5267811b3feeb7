package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Frame builds the exact byte sequence that is hashed and stored:
// "<type> <decimal payload length>\x00<payload>".
func Frame(objType ObjectType, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", objType, len(payload))
	frame := make([]byte, 0, len(header)+len(payload))
	frame = append(frame, header...)
	frame = append(frame, payload...)
	return frame
}

// HashObject computes the SHA-1 of the frame for the given type and payload.
// This is the sole source of object identity in the store.
func HashObject(objType ObjectType, payload []byte) Hash {
	h := sha1.New()
	fmt.Fprintf(h, "%s %d\x00", objType, len(payload))
	h.Write(payload)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}
