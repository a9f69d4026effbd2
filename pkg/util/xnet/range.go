package xnet

import (
	"fmt"

	"go4.org/netipx"
)

// RangeFromUint32 将以整数存储的 IPv4 起止地址转换为 [netipx.IPRange]。
// 常见于数据库中以 [ParseIPv4] 结果保存的地址段。
// from > to 时返回 [ErrInvalidRange]。
func RangeFromUint32(from, to uint32) (netipx.IPRange, error) {
	if from > to {
		return netipx.IPRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, FormatIPv4(from), FormatIPv4(to))
	}
	return netipx.IPRangeFrom(AddrFromUint32(from), AddrFromUint32(to)), nil
}

// RangeToUint32 返回 IPv4 范围的整数起止地址。
// 无效范围或 IPv6 范围返回 ok=false。
func RangeToUint32(r netipx.IPRange) (from, to uint32, ok bool) {
	if !r.IsValid() {
		return 0, 0, false
	}
	from, ok = AddrToUint32(r.From())
	if !ok {
		return 0, 0, false
	}
	to, ok = AddrToUint32(r.To())
	if !ok {
		return 0, 0, false
	}
	return from, to, true
}
