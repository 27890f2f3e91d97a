package metadata

// Tag identifiers from the EXIF 2.3 specification. Only tags the service
// resolves by name are listed; anything else in the metadata block is skipped.

const tagGPSInfo = 0x8825

var exifTagNames = map[uint16]string{
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0112: "Orientation",
	0x0131: "Software",
	0x0132: "DateTime",
	0x8769:     "ExifOffset",
	tagGPSInfo: "GPSInfo",
}

var gpsTagNames = map[uint16]string{
	0x0000: "GPSVersionID",
	0x0001: "GPSLatitudeRef",
	0x0002: "GPSLatitude",
	0x0003: "GPSLongitudeRef",
	0x0004: "GPSLongitude",
	0x0005: "GPSAltitudeRef",
	0x0006: "GPSAltitude",
	0x0007: "GPSTimeStamp",
	0x001d: "GPSDateStamp",
}
