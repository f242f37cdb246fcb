package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestWorldToCell 测试世界坐标到网格的换算
func TestWorldToCell(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl64.Vec2
		wantRow int
		wantCol int
	}{
		{"原点", mgl64.Vec2{0, 0}, 0, 0},
		{"格子内部", mgl64.Vec2{100, 70}, 1, 1},
		{"格子边界属于下一格", mgl64.Vec2{128, 64}, 1, 2},
		{"负坐标向下取整", mgl64.Vec2{-1, -1}, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := WorldToCell(tt.pos, 64)
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("WorldToCell(%v) = (%d, %d), want (%d, %d)", tt.pos, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

// TestCellCenterRoundTrip 测试格子中心换算回同一格子
func TestCellCenterRoundTrip(t *testing.T) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r, c := WorldToCell(CellCenter(row, col, 64), 64)
			if r != row || c != col {
				t.Errorf("cell (%d, %d) round-tripped to (%d, %d)", row, col, r, c)
			}
		}
	}
}

// TestGridSize 测试网格尺寸向上取整
func TestGridSize(t *testing.T) {
	rows, cols := GridSize(3200, 2560, 64)
	if rows != 40 || cols != 50 {
		t.Errorf("GridSize = (%d, %d), want (40, 50)", rows, cols)
	}
	rows, cols = GridSize(100, 65, 64)
	if rows != 2 || cols != 2 {
		t.Errorf("GridSize = (%d, %d), want (2, 2)", rows, cols)
	}
}
