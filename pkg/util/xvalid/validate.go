package xvalid

import "regexp"

// 所有模式均为整串匹配（^...$），RE2 语法，编译后只读，可并发使用。
var (
	ipPattern     = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	mobilePattern = regexp.MustCompile(`^(\+?86)?1\d{10}$`)
	emailPattern  = regexp.MustCompile(`^([a-z0-9A-Z]+[-|.]?)+[a-z0-9A-Z]@([a-z0-9A-Z]+(-[a-z0-9A-Z]+)?\.)+[a-zA-Z]{2,}$`)
	urlPattern    = regexp.MustCompile(`^https?://([\w\-]+\.)+[\w\-]+(/[\w\- ./?%&=]*)?$`)
	idCardPattern = regexp.MustCompile(`^(\d{18}|\d{15})$`)
)

// IsIP 报告 s 是否为 4 组 1~3 位数字以 '.' 分隔的形式。
// 只检查形状，不检查范围："999.999.999.999" 返回 true。
// 需要数值时使用 xnet.ParseIPv4Strict。
func IsIP(s string) bool {
	return ipPattern.MatchString(s)
}

// IsMobileNumber 报告 s 是否为中国大陆手机号：
// 可选 "+86" 或 "86" 前缀，后跟 1 开头的 11 位数字。
func IsMobileNumber(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsEmail 报告 s 是否形如 local@domain.tld。
// 本地部分由字母数字组成，可用单个 '-'、'|' 或 '.' 分隔，且以字母数字结尾；
// 顶级域至少 2 个字母。
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsURL 报告 s 是否为 http:// 或 https:// 开头的简化 URL。
// 不支持端口、用户信息和 fragment。
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// IsIDCard 报告 s 是否恰好为 18 位或 15 位数字。
// 不校验校验位和出生日期，末位为 'X' 的号码返回 false。
func IsIDCard(s string) bool {
	return idCardPattern.MatchString(s)
}
