package rbac

import "strings"

// NormalizeID 归一化短编码ID
// 历史数据中 "01" 与 "1" 混用，纯数字去前导零，全零归 "0"，非数字只去空白
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if isDigits(s) {
		trimmed := strings.TrimLeft(s, "0")
		if trimmed == "" {
			return "0"
		}
		return trimmed
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// YN 宽松布尔列归一化，去空白转大写后只认 "Y"，其余一律 "N"
func YN(raw string) string {
	if strings.ToUpper(strings.TrimSpace(raw)) == "Y" {
		return "Y"
	}
	return "N"
}

// IsYes 宽松判断 Y/N 标志列
func IsYes(raw string) bool {
	return strings.ToUpper(strings.TrimSpace(raw)) == "Y"
}

// IsActiveStatus 宽松判断 status 列
func IsActiveStatus(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == "active"
}
