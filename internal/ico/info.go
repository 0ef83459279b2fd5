package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	dirHeaderSize = 6
	dirEntrySize  = 16
	typeIcon      = 1
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// ErrNotICO is returned when data does not start with an icon directory.
var ErrNotICO = errors.New("not an ICO file")

// Entry describes one image stored in an icon file.
type Entry struct {
	Width      int // 256 when the directory stores 0
	Height     int
	ColorCount int
	Planes     int
	BitCount   int
	Size       int // payload bytes
	Offset     int
	PNG        bool // payload is a PNG stream rather than a DIB
}

// Info contains metadata about an ICO file.
type Info struct {
	Entries []Entry
}

// Largest returns the entry with the greatest area.
func (i *Info) Largest() Entry {
	var best Entry
	for _, e := range i.Entries {
		if e.Width*e.Height > best.Width*best.Height {
			best = e
		}
	}
	return best
}

// GetInfo reads the icon directory without decoding any image payloads.
func GetInfo(data []byte) (*Info, error) {
	if len(data) < dirHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrNotICO, len(data))
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	typ := binary.LittleEndian.Uint16(data[2:4])
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if reserved != 0 || typ != typeIcon {
		return nil, fmt.Errorf("%w: header reserved=%d type=%d", ErrNotICO, reserved, typ)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: directory has no images", ErrNotICO)
	}
	if len(data) < dirHeaderSize+count*dirEntrySize {
		return nil, fmt.Errorf("directory of %d entries truncated at %d bytes", count, len(data))
	}

	info := &Info{Entries: make([]Entry, 0, count)}
	for i := 0; i < count; i++ {
		e := data[dirHeaderSize+i*dirEntrySize:]
		entry := Entry{
			Width:      dimension(e[0]),
			Height:     dimension(e[1]),
			ColorCount: int(e[2]),
			Planes:     int(binary.LittleEndian.Uint16(e[4:6])),
			BitCount:   int(binary.LittleEndian.Uint16(e[6:8])),
			Size:       int(binary.LittleEndian.Uint32(e[8:12])),
			Offset:     int(binary.LittleEndian.Uint32(e[12:16])),
		}
		end := entry.Offset + entry.Size
		if entry.Size == 0 || entry.Offset < dirHeaderSize || end > len(data) || end < entry.Offset {
			return nil, fmt.Errorf("entry %d: payload [%d, %d) outside %d-byte file", i, entry.Offset, end, len(data))
		}
		entry.PNG = bytes.HasPrefix(data[entry.Offset:end], pngMagic)
		info.Entries = append(info.Entries, entry)
	}
	return info, nil
}

// IsICO reports whether data starts with an icon directory header.
func IsICO(data []byte) bool {
	return len(data) >= dirHeaderSize &&
		binary.LittleEndian.Uint16(data[0:2]) == 0 &&
		binary.LittleEndian.Uint16(data[2:4]) == typeIcon &&
		binary.LittleEndian.Uint16(data[4:6]) > 0
}

func dimension(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}
