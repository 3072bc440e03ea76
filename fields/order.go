// Copyright (c) 2025 Visvasity LLC

package fields

import (
	"encoding/binary"
	"fmt"
)

// Endian selects the byte order used to encode multi-byte fields.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
	NativeEndian
)

// ByteOrder returns the encoding/binary byte order for the endian.
func (e Endian) ByteOrder() binary.ByteOrder {
	switch e {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	case NativeEndian:
		return binary.NativeEndian
	}
	panic(fmt.Sprintf("fields: invalid endian value %d", int(e)))
}

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	case NativeEndian:
		return "native"
	}
	return fmt.Sprintf("Endian(%d)", int(e))
}

// ParseEndian parses "little", "big" or "native".
func ParseEndian(s string) (Endian, error) {
	switch s {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	case "native":
		return NativeEndian, nil
	}
	return 0, fmt.Errorf("invalid endian %q (expected little, big or native)", s)
}
