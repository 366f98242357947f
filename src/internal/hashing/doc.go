// Package hashing implements the MD5 digests used by the device's goform
// challenge-response protocol.
//
// The device firmware authorizes state-changing commands with an "AD" field
// computed in the browser as
//
//	AD = md5hex(RD + md5hex(wa_inner_version + cr_version))
//
// where RD is a per-session challenge and the two version strings identify the
// firmware build. Inputs are concatenated as UTF-8 without separators and the
// result is lowercase hex. This is a fixed external protocol: any change here
// breaks command authorization on real devices.
//
// # Example Usage
//
//	ad := hashing.CommandDigest(rd, waInnerVersion, crVersion)
//	fields["AD"] = ad
//
// Digester mirrors the incremental style used elsewhere for streaming input:
//
//	d := hashing.NewMD5Digester()
//	d.Put(waInnerVersion)
//	d.Put(crVersion)
//	versionHash := d.Hex()
package hashing
