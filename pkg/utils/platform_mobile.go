//go:build mobile

package utils

// IsMobile 移动端编译时始终返回 true（全屏运行，禁用 F11）
func IsMobile() bool {
	return true
}
