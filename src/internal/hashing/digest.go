package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
)

// Digester accumulates strings into a running MD5 without separators.
type Digester struct {
	sum hash.Hash
	n   int
}

// NewMD5Digester creates an empty Digester.
func NewMD5Digester() *Digester {
	return &Digester{sum: md5.New()}
}

// Put appends s to the digest input.
func (d *Digester) Put(s string) *Digester {
	// hash.Hash.Write never returns an error.
	_, _ = d.sum.Write([]byte(s))
	d.n++
	return d
}

// Parts returns how many strings have been written.
func (d *Digester) Parts() int {
	return d.n
}

// Hex returns the lowercase hex MD5 of everything written so far.
func (d *Digester) Hex() string {
	return hex.EncodeToString(d.sum.Sum(nil))
}

// MD5Hex returns md5hex(parts[0] + parts[1] + ...).
func MD5Hex(parts ...string) string {
	d := NewMD5Digester()
	for _, p := range parts {
		d.Put(p)
	}
	return d.Hex()
}

// VersionDigest returns md5hex(versionA + versionB).
func VersionDigest(versionA, versionB string) string {
	return MD5Hex(versionA, versionB)
}

// CommandDigest returns the AD field for a privileged command:
// md5hex(challenge + md5hex(versionA + versionB)).
func CommandDigest(challenge, versionA, versionB string) string {
	return MD5Hex(challenge, VersionDigest(versionA, versionB))
}
