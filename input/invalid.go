// Copyright (c) 2025 Visvasity LLC

package input

// Types in this file have no valid binary layout. They exist to exercise the
// checker's error paths.

type InvalidTailNotLast struct {
	Data  []byte
	After uint8
}

type InvalidPlatformInt struct {
	N int
}

type InvalidOverlap struct {
	A uint32
	B uint16 `layout:"@2"`
}

type InvalidNestedStruct struct {
	Inner Record
}

type InvalidInt64Slice struct {
	Values []int64
}

// @layout size=4
type InvalidTooLarge struct {
	A uint64
}

// @layout endian=middle
type InvalidAnnotation struct {
	A uint8
}

type InvalidBlank struct {
	_ uint32
	A uint8
}

type InvalidEmpty struct{}

// @layout size=16
type InvalidTailOffset struct {
	A    uint32
	Body []byte `layout:"@8"`
}
