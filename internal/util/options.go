package util

// OptionDisplayMap 把有序选项列表转换为字母标注的展示映射
// 存储形态始终是有序列表，字母映射只在读取时重新计算
func OptionDisplayMap(options []string) map[string]string {
	display := make(map[string]string, len(options))
	for i, opt := range options {
		// 选项数不超过26个，由请求校验保证
		display[string(rune('A'+i))] = opt
	}
	return display
}
