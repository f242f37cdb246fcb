package types

import "fmt"

// Item 背包物品类型
type Item int

const (
	ItemWood Item = iota
	ItemApple
	ItemCorn
	ItemTomato
)

// AllItems 返回全部物品类型
func AllItems() []Item {
	return []Item{ItemWood, ItemApple, ItemCorn, ItemTomato}
}

// String 返回物品名称
func (i Item) String() string {
	switch i {
	case ItemWood:
		return "wood"
	case ItemApple:
		return "apple"
	case ItemCorn:
		return "corn"
	case ItemTomato:
		return "tomato"
	default:
		return fmt.Sprintf("Item(%d)", int(i))
	}
}
