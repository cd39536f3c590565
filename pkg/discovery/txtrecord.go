package discovery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeServerTXT creates TXT records for a register server.
func EncodeServerTXT(info *ServerInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	txt[TXTKeyBoard] = info.Board
	txt[TXTKeyBackend] = info.Backend
	txt[TXTKeyBase] = strconv.FormatUint(uint64(info.Base), 16)
	txt[TXTKeySize] = strconv.FormatUint(uint64(info.Size), 16)

	if info.ReadOnly {
		txt[TXTKeyReadOnly] = ""
	}
	if len(info.Blocks) > 0 {
		txt[TXTKeyBlocks] = encodeBlocks(info.Blocks)
	}
	if info.Version != "" {
		txt[TXTKeyVersion] = info.Version
	}

	return txt
}

// DecodeServerTXT parses TXT records of a register server. Name and Port
// come from the service entry, not from TXT, and are left zero.
func DecodeServerTXT(txt TXTRecordMap) (*ServerInfo, error) {
	info := &ServerInfo{}
	var ok bool

	info.Board, ok = txt[TXTKeyBoard]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyBoard)
	}
	info.Backend, ok = txt[TXTKeyBackend]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyBackend)
	}

	base, err := parseHex32(txt, TXTKeyBase)
	if err != nil {
		return nil, err
	}
	info.Base = base

	size, err := parseHex32(txt, TXTKeySize)
	if err != nil {
		return nil, err
	}
	info.Size = size

	_, info.ReadOnly = txt[TXTKeyReadOnly]
	info.Blocks = parseBlocks(txt[TXTKeyBlocks])
	info.Version = txt[TXTKeyVersion]

	return info, nil
}

func parseHex32(txt TXTRecordMap, key string) (uint32, error) {
	s, ok := txt[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingRequired, key)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, key, s)
	}
	return uint32(v), nil
}

// encodeBlocks joins block names, dropping trailing names that would push
// the record past MaxTXTValueLen.
func encodeBlocks(blocks []string) string {
	sorted := append([]string(nil), blocks...)
	sort.Strings(sorted)

	limit := MaxTXTValueLen - len(TXTKeyBlocks) - 1
	var b strings.Builder
	for _, name := range sorted {
		n := len(name)
		if b.Len() > 0 {
			n++
		}
		if b.Len()+n > limit {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
	}
	return b.String()
}

func parseBlocks(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value"
// strings. Flags with an empty value are emitted as a bare key.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	keys := make([]string, 0, len(txt))
	for k := range txt {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(txt))
	for _, k := range keys {
		if v := txt[k]; v != "" {
			result = append(result, k+"="+v)
		} else {
			result = append(result, k)
		}
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if parts[0] != "" {
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return ErrEmptyInstanceName
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
