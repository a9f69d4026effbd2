package xnet

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIPv4 将点分十进制字符串解析为整数。
//
// 解析规则：
//   - 从左到右依次查找 3 个 '.'，不足 3 个返回 (0, false)
//   - 四段分别去除首尾 <= U+0020 的字符后按十进制解析
//   - 任一段为空、含非数字字符或超出 int64 返回 (0, false)
//
// 注意：不校验每段是否 <= 255，"999.0.0.1" 会得到一个无法经
// [FormatIPv4] 还原的整数。需要范围校验时使用 [ParseIPv4Strict]。
func ParseIPv4(s string) (int64, bool) {
	parts, ok := splitIPv4(s)
	if !ok {
		return 0, false
	}
	var octets [4]int64
	for i, p := range parts {
		n, ok := parseOctet(p)
		if !ok {
			return 0, false
		}
		octets[i] = n
	}
	// int64 移位溢出时回绕，与 64 位有符号运算一致。
	return octets[0]<<24 + octets[1]<<16 + octets[2]<<8 + octets[3], true
}

// ParseIPv4Strict 与 [ParseIPv4] 使用相同的切分与去空白规则，
// 但要求每段在 [0, 255] 内，结果保证可经 [FormatIPv4] 还原。
func ParseIPv4Strict(s string) (uint32, error) {
	parts, ok := splitIPv4(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	var v uint32
	for _, p := range parts {
		n, ok := parseOctet(p)
		if !ok {
			return 0, fmt.Errorf("%w: invalid octet %q", ErrInvalidAddress, p)
		}
		if n > 255 {
			return 0, fmt.Errorf("%w: %d", ErrOctetOutOfRange, n)
		}
		v = v<<8 | uint32(n)
	}
	return v, nil
}

// FormatIPv4 将 uint32 格式化为点分十进制字符串。
// 使用网络字节序（大端），最高 8 位为第一段。
func FormatIPv4(v uint32) string {
	var buf [15]byte // "255.255.255.255"
	b := strconv.AppendUint(buf[:0], uint64(v>>24), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64((v&0x00FFFFFF)>>16), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64((v&0x0000FFFF)>>8), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(v&0x000000FF), 10)
	return string(b)
}

// FormatIPv4Int 格式化 [ParseIPv4] 返回的整数。
// v 超出 [0, 2^32-1] 时返回 [ErrOutOfRange]，而不是静默截断。
func FormatIPv4Int(v int64) (string, error) {
	if v < 0 || v > maxIPv4 {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return FormatIPv4(uint32(v)), nil
}

const maxIPv4 = 1<<32 - 1

// splitIPv4 按前三个 '.' 切分为四段，第四段保留剩余全部内容。
func splitIPv4(s string) ([4]string, bool) {
	var parts [4]string
	rest := s
	for i := range 3 {
		idx := strings.IndexByte(rest, '.')
		if idx < 0 {
			return parts, false
		}
		parts[i] = rest[:idx]
		rest = rest[idx+1:]
	}
	parts[3] = rest
	return parts, true
}

// parseOctet 去除首尾控制字符与空格后解析十进制数字。
// 只接受 ASCII 数字，拒绝 '+'、'-' 前缀。
func parseOctet(s string) (int64, bool) {
	s = strings.TrimFunc(s, isTrimmable)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isTrimmable(r rune) bool {
	return r <= ' '
}
