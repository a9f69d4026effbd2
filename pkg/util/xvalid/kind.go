package xvalid

import (
	"fmt"
	"strings"
)

// Kind 表示一种校验规则。
type Kind uint8

const (
	// KindUnknown 表示无效的校验规则。
	KindUnknown Kind = iota
	// KindIP 对应 [IsIP]。
	KindIP
	// KindMobile 对应 [IsMobileNumber]。
	KindMobile
	// KindEmail 对应 [IsEmail]。
	KindEmail
	// KindURL 对应 [IsURL]。
	KindURL
	// KindIDCard 对应 [IsIDCard]。
	KindIDCard
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindIP:      "ip",
	KindMobile:  "mobile",
	KindEmail:   "email",
	KindURL:     "url",
	KindIDCard:  "idcard",
}

var kindFuncs = [...]func(string) bool{
	KindIP:     IsIP,
	KindMobile: IsMobileNumber,
	KindEmail:  IsEmail,
	KindURL:    IsURL,
	KindIDCard: IsIDCard,
}

// String 返回规则名称。
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// IsValid 报告 k 是否为已定义的规则。
func (k Kind) IsValid() bool {
	return k > KindUnknown && int(k) < len(kindFuncs)
}

// Kinds 按定义顺序返回所有有效规则。
func Kinds() []Kind {
	return []Kind{KindIP, KindMobile, KindEmail, KindURL, KindIDCard}
}

// ParseKind 解析规则名称（大小写不敏感，自动 TrimSpace）。
// 同时接受 "id-card"、"id_card"、"phone" 等别名。
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ip", "ipv4":
		return KindIP, nil
	case "mobile", "phone":
		return KindMobile, nil
	case "email", "mail":
		return KindEmail, nil
	case "url":
		return KindURL, nil
	case "idcard", "id-card", "id_card":
		return KindIDCard, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Validate 使用规则 k 校验 s。
// k 无效时返回 [ErrUnknownKind]。
func Validate(k Kind, s string) (bool, error) {
	if !k.IsValid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return kindFuncs[k](s), nil
}
