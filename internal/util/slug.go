package util

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// DeriveSlug 根据主题名称生成URL安全的slug
// 仅做字符串归一化，不查库；唯一性由数据库唯一索引保证
func DeriveSlug(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		}
		// 其余字符（标点、非ASCII）直接丢弃
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		// 全是标点或非ASCII时退化为稳定的哈希slug，同名永远得到同一个结果
		h := fnv.New64a()
		h.Write([]byte(name))
		return fmt.Sprintf("topic-%d", h.Sum64())
	}
	return slug
}
