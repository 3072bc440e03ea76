// Copyright (c) 2025 Visvasity LLC

package input

import "fmt"

type PageID uint64

type LSN int64

type RecordID uint32

type BlockType uint16

const (
	ZeroBlockType  BlockType = 0
	SuperBlockType BlockType = 1
	DataBlockType  BlockType = 2
	IndexBlockType BlockType = 3
)

// PageMagic identifies a formatted page.
const PageMagic = 0x46474e50

type PacketKind uint8

const (
	DataPacket  PacketKind = 1
	AckPacket   PacketKind = 2
	ResetPacket PacketKind = 3
)

func (k PacketKind) String() string {
	switch k {
	case DataPacket:
		return "data"
	case AckPacket:
		return "ack"
	case ResetPacket:
		return "reset"
	}
	return fmt.Sprintf("PacketKind(%d)", uint8(k))
}
