package domain

// FallbackMenu is served whenever the menu collection is empty or unreadable.
func FallbackMenu() []MenuItem {
	return []MenuItem{
		{Name: String("Espresso"), Description: String("Rich and bold single shot."), Price: Price(3.0), Category: String("coffee"), Image: String("/images/espresso.jpg")},
		{Name: String("Cappuccino"), Description: String("Espresso with velvety milk foam."), Price: Price(4.5), Category: String("coffee"), Image: String("/images/cappuccino.jpg")},
		{Name: String("Matcha Latte"), Description: String("Ceremonial grade matcha and milk."), Price: Price(5.0), Category: String("tea"), Image: String("/images/matcha.jpg")},
		{Name: String("Blueberry Muffin"), Description: String("Buttery muffin with fresh blueberries."), Price: Price(3.5), Category: String("bakery"), Image: String("/images/muffin.jpg")},
	}
}

type MenuSource string

const (
	MenuFromCache    MenuSource = "cache"
	MenuFromDatabase MenuSource = "database"
	MenuFromFallback MenuSource = "fallback"
)
