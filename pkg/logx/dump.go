package logx

// Dump prepares a raw HTTP dump for a log field: masks it with masker
// (nil means as is) and cuts it to maxLen bytes (0 means no limit).
func Dump(masker SensitiveDataMaskerInterface, raw []byte, maxLen int) string {
	if maxLen > 0 && len(raw) > maxLen {
		raw = raw[:maxLen]
	}

	if masker == nil {
		return string(raw)
	}

	return string(masker.Mask(raw))
}
