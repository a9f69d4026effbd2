// Package xchar 提供字符与字符串的分类判断。
//
// 单字符：
//   - [IsWord]: ASCII 字母、数字、下划线
//   - [IsMultibyte]: UTF-8 编码超过 1 字节
//   - [IsCJK]: 中日韩文字及标点区块，见 [CJKBlocks]
//
// 字符串：
//   - [ContainsChinese]: 含 U+4E00..U+9FA5 汉字
//   - [ContainsMultibyte]: 含 Latin-1 以外的字符
//   - [ContainsCJK]: 含 [CJKBlocks] 中的字符
//
// 注意两个"多字节"的含义不同：[IsMultibyte] 看 UTF-8 字节数（'é' 为 true），
// [ContainsMultibyte] 看码点是否超出 U+00FF（"é" 为 false）。
//
// 所有函数无状态，可并发调用。
package xchar
