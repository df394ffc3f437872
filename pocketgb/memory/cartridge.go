package memory

import "fmt"

const (
	headerCartTypeOffset = 0x0147
	headerROMSizeOffset  = 0x0148
	headerRAMSizeOffset  = 0x0149
	headerTitleOffset    = 0x0134
	headerTitleLength    = 16
)

// ErrUnsupportedMapper is returned when the header names a mapper this
// emulator does not implement.
type ErrUnsupportedMapper struct {
	CartType byte
}

func (e *ErrUnsupportedMapper) Error() string {
	return fmt.Sprintf("memory: unsupported cartridge mapper 0x%02X", e.CartType)
}

// ErrCartridgeLoad signals a malformed ROM image.
type ErrCartridgeLoad struct {
	Reason string
}

func (e *ErrCartridgeLoad) Error() string { return "memory: cartridge load: " + e.Reason }

var ramSizeBytes = map[byte]int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// NewCartridgeMBC validates a raw ROM image and returns the MBC
// implementation selected by its header.
func NewCartridgeMBC(data []byte) (MBC, error) {
	if len(data) < 32*1024 {
		return nil, &ErrCartridgeLoad{Reason: "image shorter than 32KiB"}
	}
	if len(data)%(16*1024) != 0 {
		return nil, &ErrCartridgeLoad{Reason: "image length is not a multiple of 16KiB"}
	}

	cartType := data[headerCartTypeOffset]
	ramSize := ramSizeBytes[data[headerRAMSizeOffset]]

	switch cartType {
	case 0x00:
		return NewNoMBC(data), nil
	case 0x01, 0x02, 0x03:
		return NewMBC1(data, ramSize), nil
	case 0x05, 0x06:
		return NewMBC2(data), nil
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return NewMBC3(data, ramSize), nil
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return NewMBC5(data, ramSize), nil
	default:
		return nil, &ErrUnsupportedMapper{CartType: cartType}
	}
}

// Title extracts and cleans the 16-byte game title from the header.
func Title(data []byte) string {
	if len(data) < headerTitleOffset+headerTitleLength {
		return ""
	}
	raw := data[headerTitleOffset : headerTitleOffset+headerTitleLength]
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return string(raw[:end])
}
