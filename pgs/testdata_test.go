package pgs

import "encoding/binary"

// buildSegment encodes one PGS segment: header followed by body. segType ==
// SegmentTypeEND encodes a bodyless END marker regardless of body's contents.
func buildSegment(segType SegmentType, pts, dts uint32, body []byte) []byte {
	if segType == SegmentTypeEND {
		body = nil
	}
	buf := make([]byte, HeaderLength+len(body))
	binary.BigEndian.PutUint16(buf[0:2], magic)
	binary.BigEndian.PutUint32(buf[2:6], pts)
	binary.BigEndian.PutUint32(buf[6:10], dts)
	buf[10] = byte(segType)
	binary.BigEndian.PutUint16(buf[11:13], uint16(len(body)))
	copy(buf[13:], body)
	return buf
}

func buildPCSBody(width, height uint16, objects int) []byte {
	body := make([]byte, 0, 11+8*objects)
	grow2 := func(v uint16) {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], v)
		body = append(body, b[:]...)
	}
	grow2(width)
	grow2(height)
	body = append(body, 0x10)            // frame rate
	grow2(1)                             // composition number
	body = append(body, byte(0x80), 0, 1, byte(objects)) // state=EpochStart, puf=0, palette id=1, obj count
	for i := 0; i < objects; i++ {
		grow2(uint16(i))  // object id
		body = append(body, 0)    // window id
		body = append(body, 0x00) // cropped=off
		grow2(0)
		grow2(0)
	}
	return body
}

func buildWDSBody(n int) []byte {
	body := []byte{byte(n)}
	for i := 0; i < n; i++ {
		entry := make([]byte, 9)
		entry[0] = byte(i)
		binary.BigEndian.PutUint16(entry[1:3], 0)
		binary.BigEndian.PutUint16(entry[3:5], 0)
		binary.BigEndian.PutUint16(entry[5:7], 100)
		binary.BigEndian.PutUint16(entry[7:9], 50)
		body = append(body, entry...)
	}
	return body
}

// buildPDSBody appends the two trailing reserved bytes the quirky entry-count
// formula in parsePDS expects segment_length to include.
func buildPDSBody(id, version uint8, entries []PaletteEntry) []byte {
	body := []byte{id, version}
	for _, e := range entries {
		body = append(body, e.ID, e.Luminance, e.ChromaRed, e.ChromaBlue, e.Transparency)
	}
	body = append(body, 0, 0)
	return body
}

func buildODSBody(objectID uint16, seq SequenceFlag, width, height uint16, rle []byte) []byte {
	body := make([]byte, 0, 11+len(rle))
	var idb [2]byte
	binary.BigEndian.PutUint16(idb[:], objectID)
	body = append(body, idb[:]...)
	body = append(body, 0) // version
	body = append(body, byte(seq))
	dataLen := uint32(len(rle)) + 4
	if seq == SequenceFirst || seq == SequenceBoth {
		dataLen = uint32(len(rle)) + 4
	}
	var lenb [3]byte
	lenb[0] = byte(dataLen >> 16)
	lenb[1] = byte(dataLen >> 8)
	lenb[2] = byte(dataLen)
	body = append(body, lenb[:]...)
	if seq == SequenceFirst || seq == SequenceBoth {
		var wb, hb [2]byte
		binary.BigEndian.PutUint16(wb[:], width)
		binary.BigEndian.PutUint16(hb[:], height)
		body = append(body, wb[:]...)
		body = append(body, hb[:]...)
	}
	body = append(body, rle...)
	return body
}
