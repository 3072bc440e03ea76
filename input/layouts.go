// Copyright (c) 2025 Visvasity LLC

package input

import "github.com/visvasity/fieldgen/fields"

// Packet is a network frame with a fixed header followed by the payload.
//
// @layout endian=big
type Packet struct {
	Kind    PacketKind
	Flags   uint8
	Length  uint16
	Seq     fields.NonZero[uint32]
	Urgent  bool
	_       [3]byte
	Ratio   float32
	Session [8]byte
	Payload []byte
}

// PageHeader is the header of a storage page, padded to 32 bytes.
//
// @layout endian=little size=32
type PageHeader struct {
	Magic    uint32
	Type     BlockType
	Level    int8
	_        [1]byte
	PageID   PageID
	LSN      LSN
	Checksum uint32 `layout:"skip=4"`
}

// Record is a key-value record. It has no annotation, so it uses the
// generator's default byte order.
type Record struct {
	ID    fields.NonZero[RecordID]
	Score float64
	Key   [16]byte
	Value []byte `layout:"@32"`
}
