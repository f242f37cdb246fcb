package embedded

import (
	"embed"
	"strings"
	"testing"
)

// 真正的资源嵌入在项目根目录的 embed.go 中，这里只验证接口行为
// 每个测试结束后重置初始化状态，避免影响其他测试

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	var emptyFS embed.FS
	Init(emptyFS)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 未初始化时所有读取都返回错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	const want = "embedded package not initialized, call Init() first"

	if _, err := Open("data/game.yaml"); err == nil || err.Error() != want {
		t.Errorf("Open: unexpected error %v", err)
	}
	if _, err := ReadFile("data/game.yaml"); err == nil || err.Error() != want {
		t.Errorf("ReadFile: unexpected error %v", err)
	}
	if _, err := ReadDir("data"); err == nil {
		t.Error("ReadDir: expected error before Init()")
	}
	if Exists("data/game.yaml") {
		t.Error("Exists should return false before Init()")
	}
}

// TestInvalidPrefix 测试无效路径前缀
func TestInvalidPrefix(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS)
	defer func() { initialized = false }()

	tests := []string{
		"assets/graphics/player.png",
		"invalid/path/test.txt",
		"game.yaml",
	}
	for _, path := range tests {
		_, err := ReadFile(path)
		if err == nil {
			t.Errorf("ReadFile(%q): expected error", path)
			continue
		}
		if !strings.HasPrefix(err.Error(), "unknown resource path prefix: ") {
			t.Errorf("ReadFile(%q): unexpected error %v", path, err)
		}
	}
}

// TestPathNormalization 测试 "./" 前缀和反斜杠被规范化
func TestPathNormalization(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS)
	defer func() { initialized = false }()

	tests := []struct {
		in   string
		want string
	}{
		{"./data/game.yaml", "data/game.yaml"},
		{"data/world.yaml", "data/world.yaml"},
	}
	for _, tt := range tests {
		got, err := normalize(tt.in)
		if err != nil {
			t.Errorf("normalize(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	// 空 FS 中文件不存在
	if Exists("./data/game.yaml") {
		t.Error("Exists should be false for an empty FS")
	}
}
