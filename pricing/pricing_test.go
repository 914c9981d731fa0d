package pricing

import (
	"testing"

	"smartduka/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuotationBaseline(t *testing.T) {
	q := ComputeQuotation(InstallationSelection{
		TVSize:           `55"`,
		BracketType:      BracketFixed,
		HasOwnBacklights: true,
	})

	assert.Equal(t, int64(1500), q.Labor)
	assert.Equal(t, int64(2500), q.Bracket)
	assert.Equal(t, int64(200), q.Transport)
	assert.Equal(t, int64(0), q.AddOns)
	assert.Equal(t, int64(4200), q.FinalTotal)
}

func TestComputeQuotationIsPure(t *testing.T) {
	sel := InstallationSelection{
		TVSize:        `75"`,
		BracketType:   BracketSwivel,
		MountSoundbar: true,
		HideCables:    true,
	}

	first := ComputeQuotation(sel)
	second := ComputeQuotation(sel)
	assert.Equal(t, first, second)
}

func TestBacklightSupplyAddsExactly1300(t *testing.T) {
	sel := InstallationSelection{
		TVSize:           `55"`,
		BracketType:      BracketFixed,
		HasOwnBacklights: true,
	}
	withOwn := ComputeQuotation(sel)

	sel.HasOwnBacklights = false
	needsSupply := ComputeQuotation(sel)

	assert.Equal(t, withOwn.AddOns+1300, needsSupply.AddOns)
	assert.Equal(t, withOwn.FinalTotal+1300, needsSupply.FinalTotal)
}

func TestQuotationAddOnBreakdown(t *testing.T) {
	q := ComputeQuotation(InstallationSelection{
		TVSize:           `43"`,
		BracketType:      BracketSwivel,
		MountSoundbar:    true,
		HasOwnBacklights: false,
		HideCables:       true,
	})

	// 1300 supply + 1000 soundbar + 300 concealment
	assert.Equal(t, int64(2600), q.AddOns)
	assert.Equal(t, int64(1500), q.Labor)
	assert.Equal(t, int64(2000), q.Bracket)
	assert.Equal(t, q.Labor+q.Bracket+q.Transport+q.AddOns, q.FinalTotal)
}

func TestUnknownSizePricesLinesAtZero(t *testing.T) {
	q := ComputeQuotation(InstallationSelection{
		TVSize:           `110"`,
		BracketType:      BracketFixed,
		HasOwnBacklights: true,
	})

	assert.Equal(t, int64(0), q.Labor)
	assert.Equal(t, int64(0), q.Bracket)
	assert.Equal(t, TransportFee, q.FinalTotal)
}

func TestComputeOrderTotalTVTier(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "tv1", Category: "TVs", Price: 54500, Quantity: 1},
		{ProductID: "ph1", Category: "Phones", Price: 165000, Quantity: 1},
	}

	basic := ComputeOrderTotal(items, TVTierBasic, false)
	assert.Equal(t, int64(219500), basic.Subtotal)
	assert.Equal(t, int64(0), basic.Installation)
	assert.Equal(t, int64(219500), basic.FinalTotal)

	master := ComputeOrderTotal(items, TVTierMaster, false)
	assert.Equal(t, int64(8500), master.Installation)
	assert.Equal(t, int64(228000), master.FinalTotal)
}

func TestOrderTotalTierNeedsInstallableTV(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "ph1", Category: "Phones", Price: 165000, Quantity: 1},
	}

	got := ComputeOrderTotal(items, TVTierMaster, false)
	assert.Equal(t, int64(0), got.Installation)
	assert.Equal(t, int64(165000), got.FinalTotal)
}

func TestOrderTotalKitchenFee(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "fr1", Category: "Kitchen Appliances", Price: 78500, Quantity: 1},
	}

	notRequested := ComputeOrderTotal(items, TVTierBasic, false)
	assert.Equal(t, int64(0), notRequested.Kitchen)

	requested := ComputeOrderTotal(items, TVTierBasic, true)
	assert.Equal(t, KitchenInstallFee, requested.Kitchen)
	assert.Equal(t, int64(78500)+KitchenInstallFee, requested.FinalTotal)

	// requesting kitchen install without a kitchen item charges nothing
	phones := []models.CartItem{{ProductID: "ph1", Category: "Phones", Price: 1000, Quantity: 1}}
	noKitchen := ComputeOrderTotal(phones, TVTierBasic, true)
	assert.Equal(t, int64(0), noKitchen.Kitchen)
}

func TestOrderTotalQuantitiesCount(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "tv1", Category: "TVs", Price: 54500, Quantity: 2},
	}
	got := ComputeOrderTotal(items, TVTierBasic, false)
	assert.Equal(t, int64(109000), got.Subtotal)
}
