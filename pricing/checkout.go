package pricing

import "smartduka/models"

// TV installation tiers offered at checkout.
const (
	TVTierBasic   = "basic"
	TVTierStealth = "stealth"
	TVTierMaster  = "master"
)

var TVInstallTiers = RateTable{
	TVTierBasic:   0,
	TVTierStealth: 3500,
	TVTierMaster:  8500,
}

// Categories whose items can carry an installation add-on.
var (
	InstallableTVCategories      = []string{"TVs", "OLED & QLED TVs"}
	InstallableKitchenCategories = []string{"Kitchen Appliances", "Home Appliances"}
)

// OrderTotal is the order-level cost breakdown computed at checkout.
type OrderTotal struct {
	Subtotal     int64 `json:"subtotal"`
	Installation int64 `json:"installation"`
	Kitchen      int64 `json:"kitchen"`
	FinalTotal   int64 `json:"finalTotal"`
}

// ComputeOrderTotal prices a checkout: cart subtotal plus the TV
// installation tier fee (only when an installable TV is in the cart)
// and the kitchen installation flat fee (only when a kitchen-category
// item is present and the customer asked for it).
func ComputeOrderTotal(items []models.CartItem, tvTier string, kitchenRequested bool) OrderTotal {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Price * int64(it.Quantity)
	}

	hasTV := hasCategory(items, InstallableTVCategories)
	hasKitchen := hasCategory(items, InstallableKitchenCategories)

	installation := SumAddOns(AddOn{Applies: hasTV, Amount: TVInstallTiers.Lookup(tvTier)})
	kitchen := SumAddOns(AddOn{Applies: hasKitchen && kitchenRequested, Amount: KitchenInstallFee})

	return OrderTotal{
		Subtotal:     subtotal,
		Installation: installation,
		Kitchen:      kitchen,
		FinalTotal:   subtotal + installation + kitchen,
	}
}

func hasCategory(items []models.CartItem, categories []string) bool {
	for _, it := range items {
		for _, c := range categories {
			if it.Category == c {
				return true
			}
		}
	}
	return false
}
