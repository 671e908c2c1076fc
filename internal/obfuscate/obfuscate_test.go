package obfuscate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_EvenLength(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}

	got := Decode(buf)

	assert.Len(t, got, 2)
	assert.Equal(t, []byte{0x01 ^ 0x03, 0x02 ^ 0x04}, got)
}

func TestDecode_OddLength(t *testing.T) {
	// pad is one byte shorter than the data half; the last data byte
	// must pass through unchanged
	buf := []byte{0xFF, 0xFF, 0x0F, 0xF0, 0xAA}

	got := Decode(buf)

	assert.Equal(t, []byte{0xFF ^ 0x0F, 0xFF ^ 0xF0, 0xAA}, got)
}

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, Decode(nil))
	assert.Empty(t, Decode([]byte{}))
}

func TestDecode_SingleByte(t *testing.T) {
	// no pad at all, the byte passes through
	assert.Equal(t, []byte{0x42}, Decode([]byte{0x42}))
}

func TestDecode_DoesNotModifyInput(t *testing.T) {
	buf := []byte{0x10, 0x20, 0x30, 0x40}
	orig := append([]byte(nil), buf...)

	Decode(buf)

	assert.Equal(t, orig, buf)
}

func TestDecode_IsPure(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x13, 0x37}

	assert.Equal(t, Decode(buf), Decode(buf))
}

func TestDecodeVersioned(t *testing.T) {
	// V2 strips the leading header byte, then splits like V1
	buf := []byte{0x99, 0x01, 0x02, 0x03, 0x04}

	assert.Equal(t, Decode(buf), DecodeVersioned(buf, V1))
	assert.Equal(t, Decode(buf[1:]), DecodeVersioned(buf, V2))
}

func TestDecodeVersioned_V2Empty(t *testing.T) {
	assert.Empty(t, DecodeVersioned(nil, V2))
}
