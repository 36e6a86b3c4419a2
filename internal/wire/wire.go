// Package wire holds the primitive byte-level helpers shared by every IE
// and message codec: big-endian integer access, NTP<->Unix timestamp
// conversion, and IPv4/IPv6 octet marshalling.
package wire

import (
	"encoding/binary"
	"fmt"
	"net"
)

// NTPEpochOffset is the number of seconds between the NTP epoch
// (1900-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const NTPEpochOffset uint32 = 2208988800

// PutUint24 writes the low 24 bits of v into buf[0:3], big-endian. PFCP
// stores the sequence number in a 24-bit wire field kept in a 32-bit slot.
func PutUint24(buf []byte, v uint32) {
	buf[0] = byte(v >> 16)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v)
}

// Uint24 reads a 24-bit big-endian value from buf[0:3] into the low bits
// of a uint32.
func Uint24(buf []byte) uint32 {
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
}

// EncodeNTP converts a Unix timestamp (seconds since 1970) into the 4-octet
// NTP-epoch-seconds wire representation used by Recovery Time Stamp,
// Monitoring Time, and similar IEs.
func EncodeNTP(unixSeconds uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], unixSeconds+NTPEpochOffset)
	return b
}

// DecodeNTP converts a 4-octet NTP-epoch-seconds field back to a Unix
// timestamp, rejecting values that predate the Unix epoch.
func DecodeNTP(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("wire: NTP timestamp requires 4 bytes, got %d", len(b))
	}
	ntp := binary.BigEndian.Uint32(b)
	if ntp < NTPEpochOffset {
		return 0, fmt.Errorf("wire: NTP timestamp %d predates the Unix epoch", ntp)
	}
	return ntp - NTPEpochOffset, nil
}

// PutIPv4 appends the 4-octet representation of ip to buf. It panics if ip
// is not a valid IPv4 address; callers are expected to have validated the
// address before reaching the wire layer.
func PutIPv4(buf []byte, ip net.IP) []byte {
	v4 := ip.To4()
	if v4 == nil {
		panic("wire: PutIPv4 given a non-IPv4 address")
	}
	return append(buf, v4...)
}

// PutIPv6 appends the 16-octet representation of ip to buf.
func PutIPv6(buf []byte, ip net.IP) []byte {
	v6 := ip.To16()
	if v6 == nil {
		panic("wire: PutIPv6 given a non-IPv6 address")
	}
	return append(buf, v6...)
}
