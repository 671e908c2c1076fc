package obfuscate

// ProtocolVersion pins the framing of obfuscated API payloads. V1
// splits the raw buffer directly; V2 drops a one byte header before
// splitting. The version in use has to match the upstream API and is
// never guessed from the bytes.
type ProtocolVersion int

const (
	V1 ProtocolVersion = iota + 1
	V2
)

// Decode strips the XOR pad from an obfuscated payload. The first
// half of buf (floor division) is the pad, the remainder is the data;
// for odd lengths the final data byte has no pad byte and passes
// through untouched. The input is not modified.
func Decode(buf []byte) []byte {
	padSize := len(buf) / 2
	pad := buf[:padSize]
	data := append([]byte(nil), buf[padSize:]...)

	for i := 0; i < padSize; i++ {
		data[i] ^= pad[i]
	}

	return data
}

// DecodeVersioned applies the version-specific framing before the
// half split.
func DecodeVersioned(buf []byte, v ProtocolVersion) []byte {
	if v == V2 && len(buf) > 0 {
		buf = buf[1:]
	}

	return Decode(buf)
}
