// Package xnet 提供 IPv4 点分十进制与 32 位整数的互转工具。
//
// # 核心功能
//
//   - ipv4.go: [ParseIPv4] / [FormatIPv4] 编解码，[ParseIPv4Strict] 带范围校验的解析
//   - convert.go: uint32 与 [netip.Addr] 互转
//   - range.go: 整数起止地址与 [netipx.IPRange] 互转
//
// # 快速示例
//
//	v, ok := xnet.ParseIPv4("192.168.1.1")  // 3232235777, true
//	s := xnet.FormatIPv4(uint32(v))         // "192.168.1.1"
//
// # 宽松解析
//
// [ParseIPv4] 不校验每段 <= 255：
//
//	v, _ := xnet.ParseIPv4("999.0.0.1")     // 16760438785
//	xnet.FormatIPv4(uint32(v))              // "231.0.0.1"，无法还原
//
// 这是有意保留的兼容行为：已有数据按此规则入库，收紧会改变对外结果。
// 新代码应优先使用 [ParseIPv4Strict]，它对越界段返回 [ErrOctetOutOfRange]。
//
// # 输入行为说明
//
//   - 每段首尾的空白和控制字符（<= U+0020）会被去除，如 " 1 .2.3.4"
//   - 只接受 ASCII 数字，"+1.2.3.4"、"-1.2.3.4" 解析失败
//   - 第四段包含多余的 '.' 时解析失败（"1.2.3.4.5"）
//   - 解析失败返回 ok=false，不会 panic
//
// # 整数宽度
//
// [ParseIPv4] 返回 int64，[FormatIPv4] 接收 uint32。
// 超出 32 位的值需调用方显式转换（uint32(v)），
// 或使用 [FormatIPv4Int] 获得越界错误。
//
// 仅支持 IPv4。
package xnet
