package ingestion

import "strings"

const (
	// binarySampleSize is the number of bytes sampled for binary detection.
	binarySampleSize = 1000
	// binaryThreshold is the proportion of non-printable characters that
	// marks content as binary.
	binaryThreshold = 0.3
)

// IsBinaryData reports whether content looks like an undecoded binary upload
// (a PDF or ZIP container submitted as plain text, or raw bytes generally).
func IsBinaryData(content string) bool {
	if len(content) == 0 {
		return false
	}

	if strings.HasPrefix(content, "%PDF-") || strings.HasPrefix(content, "PK\x03\x04") {
		return true
	}

	sample := content
	if len(sample) > binarySampleSize {
		sample = sample[:binarySampleSize]
	}

	nonPrintable := 0
	for _, r := range sample {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if r < 0x20 || r == 0xFFFD {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > binaryThreshold
}
