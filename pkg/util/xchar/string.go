package xchar

import "strings"

const (
	chineseLo = 0x4E00
	chineseHi = 0x9FA5
	latin1Max = 0xFF
)

// ContainsChinese 报告 s 是否包含 U+4E00..U+9FA5 范围内的汉字。
// 不包括中文标点和扩展区汉字。
func ContainsChinese(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= chineseLo && r <= chineseHi
	})
}

// ContainsMultibyte 报告 s 是否包含 U+0000..U+00FF 以外的字符。
//
// 判断依据是码点是否超出 Latin-1，而不是 UTF-8 字节数：
// "café" 返回 false，"你好" 返回 true。
// 非法 UTF-8 字节按 U+FFFD 处理，返回 true。
func ContainsMultibyte(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r > latin1Max
	})
}

// ContainsCJK 报告 s 是否包含 [IsCJK] 为 true 的字符。
func ContainsCJK(s string) bool {
	return strings.ContainsFunc(s, IsCJK)
}
