// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"
)

// ObjectIDLength is the length of a hex-encoded object identifier.
const ObjectIDLength = 24

var (
	objectIDProcessUnique = processUnique()
	objectIDCounter       = randomCounter()
)

// NewObjectID returns a new 24-character lowercase hex identifier.
//
// The 12 underlying bytes are: 4 bytes of big-endian unix seconds, 5 bytes
// unique to the running process, and a 3-byte counter, so identifiers
// generated by one process sort by creation second and never repeat.
func NewObjectID() string {
	return newObjectIDAt(time.Now())
}

func newObjectIDAt(t time.Time) string {
	var b [12]byte

	binary.BigEndian.PutUint32(b[0:4], uint32(t.Unix()))
	copy(b[4:9], objectIDProcessUnique[:])

	c := objectIDCounter.Add(1)
	b[9] = byte(c >> 16)
	b[10] = byte(c >> 8)
	b[11] = byte(c)

	return hex.EncodeToString(b[:])
}

// IsObjectID reports whether s is exactly 24 hexadecimal characters.
// Upper- and lower-case digits are accepted; a "0x" prefix is not.
func IsObjectID(s string) bool {
	if len(s) != ObjectIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func processUnique() [5]byte {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("utils: cannot initialize object id generator: " + err.Error())
	}
	return b
}

func randomCounter() *atomic.Uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("utils: cannot initialize object id counter: " + err.Error())
	}
	c := new(atomic.Uint32)
	c.Store(binary.BigEndian.Uint32(b[:]))
	return c
}
