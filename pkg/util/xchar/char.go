package xchar

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// 以下区块边界取自 Unicode Blocks.txt。
var (
	cjkUnifiedIdeographs = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}},
	}
	cjkCompatibilityIdeographs = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}},
	}
	cjkUnifiedIdeographsExtA = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}},
	}
	generalPunctuation = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x2000, Hi: 0x206F, Stride: 1}},
	}
	cjkSymbolsAndPunctuation = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x3000, Hi: 0x303F, Stride: 1}},
	}
	halfwidthAndFullwidthForms = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1}},
	}
)

// CJKBlocks 是 [IsCJK] 使用的区块集合：
//   - CJK Unified Ideographs (U+4E00..U+9FFF)
//   - CJK Compatibility Ideographs (U+F900..U+FAFF)
//   - CJK Unified Ideographs Extension A (U+3400..U+4DBF)
//   - General Punctuation (U+2000..U+206F)
//   - CJK Symbols and Punctuation (U+3000..U+303F)
//   - Halfwidth and Fullwidth Forms (U+FF00..U+FFEF)
//
// 只读，不要修改。
var CJKBlocks = rangetable.Merge(
	cjkUnifiedIdeographs,
	cjkCompatibilityIdeographs,
	cjkUnifiedIdeographsExtA,
	generalPunctuation,
	cjkSymbolsAndPunctuation,
	halfwidthAndFullwidthForms,
)

// IsWord 报告 r 是否为 ASCII 字母、数字或下划线（正则 \w）。
func IsWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// IsMultibyte 报告 r 的 UTF-8 编码是否超过 1 字节。
// 无法编码的 rune（代理区、超出 U+10FFFF、负数）返回 false。
func IsMultibyte(r rune) bool {
	return utf8.RuneLen(r) > 1
}

// IsCJK 报告 r 是否属于 [CJKBlocks] 中的任一区块。
// 注意 General Punctuation 包含 '—'、'…' 等西文排版符号。
func IsCJK(r rune) bool {
	return unicode.Is(CJKBlocks, r)
}

// Class 汇总单个字符的分类结果。
type Class struct {
	Rune      rune `json:"-"`
	Word      bool `json:"word"`
	Multibyte bool `json:"multibyte"`
	CJK       bool `json:"cjk"`
}

// Classify 一次返回 r 的全部分类。
func Classify(r rune) Class {
	return Class{
		Rune:      r,
		Word:      IsWord(r),
		Multibyte: IsMultibyte(r),
		CJK:       IsCJK(r),
	}
}
