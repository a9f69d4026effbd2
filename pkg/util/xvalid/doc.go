// Package xvalid 提供基于固定正则的字符串格式校验。
//
// 校验函数：
//   - [IsIP]: IPv4 字面量形状（不检查 0~255）
//   - [IsMobileNumber]: 中国大陆手机号，可带 +86/86 前缀
//   - [IsEmail]: local@domain.tld
//   - [IsURL]: http/https URL
//   - [IsIDCard]: 18 位或 15 位数字
//
// 所有函数均为整串匹配，空串与任何不匹配的输入返回 false，不会 panic。
//
// 规则只检查格式，不做语义校验。例如 [IsIDCard] 不验证校验位，
// 修改这一点会改变已有调用方的结果。
//
// 需要按名称动态选择规则时（如命令行），使用 [ParseKind] 和 [Validate]：
//
//	k, err := xvalid.ParseKind("email")
//	if err != nil {
//	    return err
//	}
//	ok, _ := xvalid.Validate(k, "foo@example.com")
package xvalid
