package utils

import "hash/crc32"

// GenerateCrc returns the IEEE crc32 of the concatenation of parts
func GenerateCrc(parts ...[]byte) uint32 {
	var crc uint32
	for _, p := range parts {
		crc = crc32.Update(crc, crc32.IEEETable, p)
	}
	return crc
}

func CheckCrc(crc uint32, parts ...[]byte) bool {
	return GenerateCrc(parts...) == crc
}
