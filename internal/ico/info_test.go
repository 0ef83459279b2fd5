package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

type rawEntry struct {
	w, h    byte
	bpp     uint16
	payload []byte
}

// buildICO lays out a directory followed by each payload in order.
func buildICO(t *testing.T, entries []rawEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(len(entries))})

	offset := uint32(dirHeaderSize + len(entries)*dirEntrySize)
	for _, e := range entries {
		buf.Write([]byte{e.w, e.h, 0, 0})
		binary.Write(&buf, binary.LittleEndian, uint16(1))
		binary.Write(&buf, binary.LittleEndian, e.bpp)
		binary.Write(&buf, binary.LittleEndian, uint32(len(e.payload)))
		binary.Write(&buf, binary.LittleEndian, offset)
		offset += uint32(len(e.payload))
	}
	for _, e := range entries {
		buf.Write(e.payload)
	}
	return buf.Bytes()
}

func TestGetInfoMultipleEntries(t *testing.T) {
	data := buildICO(t, []rawEntry{
		{w: 16, h: 16, bpp: 32, payload: []byte("dib-data-16")},
		{w: 0, h: 0, bpp: 32, payload: append(append([]byte{}, pngMagic...), "rest"...)},
		{w: 48, h: 48, bpp: 8, payload: []byte("dib-48")},
	})

	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if len(info.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(info.Entries))
	}

	first := info.Entries[0]
	if first.Width != 16 || first.Height != 16 || first.BitCount != 32 || first.Planes != 1 || first.PNG {
		t.Errorf("entry 0 = %+v", first)
	}
	big := info.Entries[1]
	if big.Width != 256 || big.Height != 256 || !big.PNG {
		t.Errorf("entry 1 = %+v, want 256x256 PNG", big)
	}
	if info.Largest().Width != 256 {
		t.Errorf("Largest = %+v", info.Largest())
	}
	if info.Entries[2].Offset != big.Offset+big.Size {
		t.Errorf("entry 2 offset %d, want %d", info.Entries[2].Offset, big.Offset+big.Size)
	}
}

func TestGetInfoErrors(t *testing.T) {
	valid := buildICO(t, []rawEntry{{w: 32, h: 32, bpp: 32, payload: []byte("payload")}})

	cursor := append([]byte{}, valid...)
	cursor[2] = 2

	truncated := valid[:dirHeaderSize+8]

	badOffset := append([]byte{}, valid...)
	binary.LittleEndian.PutUint32(badOffset[dirHeaderSize+12:], uint32(len(valid)))

	cases := []struct {
		name   string
		data   []byte
		notICO bool
	}{
		{"empty", nil, true},
		{"cursor", cursor, true},
		{"zero count", []byte{0, 0, 1, 0, 0, 0}, true},
		{"truncated directory", truncated, false},
		{"payload past end", badOffset, false},
	}
	for _, c := range cases {
		_, err := GetInfo(c.data)
		if err == nil {
			t.Errorf("%s: GetInfo succeeded, want error", c.name)
			continue
		}
		if errors.Is(err, ErrNotICO) != c.notICO {
			t.Errorf("%s: errors.Is(ErrNotICO) = %v, want %v (%v)", c.name, !c.notICO, c.notICO, err)
		}
	}
}
