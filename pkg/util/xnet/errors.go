package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无法解析的点分十进制字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IPv4 address")

	// ErrOctetOutOfRange 表示某一段超出 [0, 255]。
	ErrOctetOutOfRange = errors.New("xnet: IPv4 octet out of range")

	// ErrOutOfRange 表示整数超出 IPv4 的 32 位无符号范围。
	ErrOutOfRange = errors.New("xnet: value out of IPv4 range")

	// ErrInvalidRange 表示起始地址大于结束地址。
	ErrInvalidRange = errors.New("xnet: invalid IPv4 range")
)
