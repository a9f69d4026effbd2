// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IPv4 点分十进制与整数互转，基于 net/netip + go4.org/netipx 的区间转换
//   - xvalid: 固定规则的字符串校验（IP、手机号、邮箱、URL、身份证号）
//   - xchar: 字符与字符串分类（中文、多字节、CJK 区块）
//
// 设计原则：
//   - 纯函数，无状态，可并发调用
//   - 判定类函数只返回 bool，不返回错误
//   - 可失败的函数返回包内哨兵错误，使用 errors.Is 判断
package util
