package pricing

// RateTable maps a discrete option (screen size tier, installation tier)
// to a cost in whole KES. Lookup of an unknown key prices the line at 0:
// missing table entries degrade to zero cost instead of rejecting the
// request, so the engines stay total functions over their inputs.
type RateTable map[string]int64

func (t RateTable) Lookup(key string) int64 {
	return t[key]
}

// AddOn is a conditional flat fee.
type AddOn struct {
	Applies bool
	Amount  int64
}

func SumAddOns(addons ...AddOn) int64 {
	var total int64
	for _, a := range addons {
		if a.Applies {
			total += a.Amount
		}
	}
	return total
}

// TransportFee is flat regardless of size or location.
const TransportFee int64 = 200

// Add-on fees
const (
	BacklightSupplyFee int64 = 1300
	SoundbarLaborFee   int64 = 1000
	CableConcealFee    int64 = 300
	KitchenInstallFee  int64 = 3500
)

var LaborRates = RateTable{
	`32"`:  1500,
	`43"`:  1500,
	`50"`:  1500,
	`55"`:  1500,
	`65"`:  2500,
	`75"`:  3500,
	`85"`:  5000,
	`98"+`: 8000,
}

var FixedBracketRates = RateTable{
	`32"`:  1000,
	`43"`:  1500,
	`50"`:  2000,
	`55"`:  2500,
	`65"`:  2500,
	`75"`:  5000,
	`85"`:  7000,
	`98"+`: 13000,
}

var SwivelBracketRates = RateTable{
	`32"`:  1500,
	`43"`:  2000,
	`50"`:  2500,
	`55"`:  4500,
	`65"`:  4500,
	`75"`:  4500,
	`85"`:  6500,
	`98"+`: 22000,
}

type BracketType string

const (
	BracketFixed  BracketType = "Fixed"
	BracketSwivel BracketType = "Swivel"
)

// InstallationSelection is the option set of a mounting booking. It is
// consumed into a Quotation and never persisted on its own.
type InstallationSelection struct {
	TVSize           string      `json:"tvSize"`
	BracketType      BracketType `json:"bracketType"`
	MountSoundbar    bool        `json:"mount_soundbar"`
	HasOwnBacklights bool        `json:"hasOwnBacklights"`
	HideCables       bool        `json:"hide_cables"`
}

// Quotation is the derived cost breakdown. FinalTotal is always
// Labor + Bracket + Transport + AddOns.
type Quotation struct {
	Labor      int64 `json:"labor"`
	Bracket    int64 `json:"bracket"`
	Transport  int64 `json:"transport"`
	AddOns     int64 `json:"addons"`
	FinalTotal int64 `json:"finalTotal"`
}

// ComputeQuotation prices a mounting booking. Pure: identical selections
// always yield identical quotations.
func ComputeQuotation(sel InstallationSelection) Quotation {
	labor := LaborRates.Lookup(sel.TVSize)

	bracketTable := SwivelBracketRates
	if sel.BracketType == BracketFixed {
		bracketTable = FixedBracketRates
	}
	bracket := bracketTable.Lookup(sel.TVSize)

	addons := SumAddOns(
		AddOn{Applies: !sel.HasOwnBacklights, Amount: BacklightSupplyFee},
		AddOn{Applies: sel.MountSoundbar, Amount: SoundbarLaborFee},
		AddOn{Applies: sel.HideCables, Amount: CableConcealFee},
	)

	return Quotation{
		Labor:      labor,
		Bracket:    bracket,
		Transport:  TransportFee,
		AddOns:     addons,
		FinalTotal: labor + bracket + TransportFee + addons,
	}
}
