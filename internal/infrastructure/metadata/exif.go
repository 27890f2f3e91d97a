package metadata

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/mdourado/box-geotag-service/internal/domain"
)

// TagMap holds decoded metadata tags keyed by name. Nested directories (the
// GPS block) appear as a TagMap value.
type TagMap map[string]any

// ParseTags decodes the EXIF block of a JPEG or raw TIFF byte stream into a
// tag map. An image without an EXIF block yields an empty map. Bytes that are
// not a readable image container yield domain.ErrUnreadableImage.
func ParseTags(data []byte) (TagMap, error) {
	tiff, err := exifSegment(data)
	if err != nil {
		return nil, err
	}
	if tiff == nil {
		return TagMap{}, nil
	}
	return parseTIFF(tiff)
}

// exifSegment returns the TIFF-formatted EXIF payload, or nil when the image
// simply has none.
func exifSegment(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, unreadable("image too short")
	}

	// Raw TIFF is accepted as-is; JPEG needs an APP1 segment scan.
	if (data[0] == 'I' && data[1] == 'I') || (data[0] == 'M' && data[1] == 'M') {
		return data, nil
	}
	if data[0] != 0xff || data[1] != 0xd8 {
		return nil, unreadable("not a JPEG or TIFF stream")
	}

	offset := 2
	for offset+4 <= len(data) {
		if data[offset] != 0xff {
			return nil, unreadable("invalid JPEG marker")
		}

		marker := data[offset+1]
		switch {
		case marker == 0xff:
			// Fill byte before a marker.
			offset++
			continue
		case marker == 0x01 || (marker >= 0xd0 && marker <= 0xd8):
			// Standalone marker, no length field.
			offset += 2
			continue
		case marker == 0xd9 || marker == 0xda:
			// End of image or start of scan data: no EXIF segment exists.
			return nil, nil
		}

		length := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		if length < 2 || offset+2+length > len(data) {
			return nil, unreadable("truncated JPEG segment")
		}

		segment := data[offset+4 : offset+2+length]
		if marker == 0xe1 && len(segment) >= 6 && string(segment[:6]) == "Exif\x00\x00" {
			return segment[6:], nil
		}

		offset += 2 + length
	}

	return nil, nil
}

func parseTIFF(data []byte) (TagMap, error) {
	if len(data) < 8 {
		return nil, unreadable("metadata block too short")
	}

	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, unreadable("unknown metadata byte order")
	}

	tags := TagMap{}
	parseIFD(data, order.Uint32(data[4:8]), order, exifTagNames, tags)

	// The GPSInfo value is an offset to a nested directory with its own tag
	// dictionary.
	if gpsOffset, ok := tags["GPSInfo"].(float64); ok {
		gps := TagMap{}
		parseIFD(data, uint32(gpsOffset), order, gpsTagNames, gps)
		tags["GPSInfo"] = gps
	}

	return tags, nil
}

// parseIFD walks one image file directory. Malformed entries are skipped
// rather than failing the whole block; a tag the image does not carry is not
// an error.
func parseIFD(data []byte, offset uint32, order binary.ByteOrder, names map[uint16]string, out TagMap) {
	if int(offset)+2 > len(data) {
		return
	}

	entries := int(order.Uint16(data[offset : offset+2]))
	pos := int(offset) + 2

	for i := 0; i < entries; i++ {
		if pos+12 > len(data) {
			return
		}
		entry := data[pos : pos+12]
		pos += 12

		name, ok := names[order.Uint16(entry[0:2])]
		if !ok {
			continue
		}
		value, ok := decodeValue(data, entry, order)
		if !ok {
			continue
		}
		out[name] = value
	}
}

const (
	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeRational  = 5
	typeSRational = 10
)

var typeSizes = map[uint16]int{
	typeByte:      1,
	typeASCII:     1,
	typeShort:     2,
	typeLong:      4,
	typeRational:  8,
	typeSRational: 8,
}

// decodeValue resolves an IFD entry to a Go value. Numeric types become
// float64 (a slice when the count is greater than one), ASCII becomes a
// NUL-trimmed string.
func decodeValue(data, entry []byte, order binary.ByteOrder) (any, bool) {
	typ := order.Uint16(entry[2:4])
	count := int(order.Uint32(entry[4:8]))

	size, ok := typeSizes[typ]
	if !ok || count <= 0 || count > 1<<16 {
		return nil, false
	}

	total := size * count
	var raw []byte
	if total <= 4 {
		raw = entry[8 : 8+total]
	} else {
		valueOffset := int(order.Uint32(entry[8:12]))
		if valueOffset < 0 || valueOffset+total > len(data) {
			return nil, false
		}
		raw = data[valueOffset : valueOffset+total]
	}

	if typ == typeASCII {
		return strings.TrimRight(string(raw), "\x00"), true
	}

	values := make([]float64, count)
	for i := 0; i < count; i++ {
		chunk := raw[i*size:]
		switch typ {
		case typeByte:
			values[i] = float64(chunk[0])
		case typeShort:
			values[i] = float64(order.Uint16(chunk[:2]))
		case typeLong:
			values[i] = float64(order.Uint32(chunk[:4]))
		case typeRational:
			den := order.Uint32(chunk[4:8])
			if den == 0 {
				return nil, false
			}
			values[i] = float64(order.Uint32(chunk[:4])) / float64(den)
		case typeSRational:
			den := int32(order.Uint32(chunk[4:8]))
			if den == 0 {
				return nil, false
			}
			values[i] = float64(int32(order.Uint32(chunk[:4]))) / float64(den)
		}
	}

	if count == 1 {
		return values[0], true
	}
	return values, true
}

func unreadable(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrUnreadableImage, msg)
}
