package products

import (
	"context"
	"log"

	"smartduka/db"
	"smartduka/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seed loads the demo catalogue when the collection is empty.
func Seed(ctx context.Context) {
	count, err := db.ProductsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("Seed count error:", err)
		return
	}
	if count > 0 {
		return
	}

	docs := make([]interface{}, 0, len(catalogue))
	for _, p := range catalogue {
		docs = append(docs, p)
	}
	if _, err := db.ProductsCollection.InsertMany(ctx, docs); err != nil {
		log.Println("Seed InsertMany error:", err)
		return
	}
	log.Printf("Seeded %d catalogue products", len(catalogue))
}

var catalogue = []models.Product{
	{
		ProductID: "prd_hisense_55a6k",
		Slug:      "hisense-55-a6k-4k-tv",
		Name:      `Hisense 55" A6K Series 4K UHD Smart TV`,
		Brand:     "Hisense",
		Price:     54500,
		Category:  "TVs",
		Warranty:  "2 Year Official Warranty",
		KeyFeatures: []string{
			"Dolby Vision HDR", "DTS Virtual:X", "VIDAA Smart OS",
		},
		Specs: map[string]string{
			"Resolution":   "3840 x 2160",
			"Refresh Rate": "60Hz",
			"HDMI Ports":   "3",
		},
		Images: []string{"hisense-55-a6k-front.jpg"},
	},
	{
		ProductID: "prd_hisense_75u8k",
		Slug:      "hisense-75-u8k-mini-led",
		Name:      `Hisense 75" U8K Mini-LED 4K Smart TV`,
		Brand:     "Hisense",
		Price:     185000,
		Category:  "OLED & QLED TVs",
		Warranty:  "2 Year Official Warranty",
		KeyFeatures: []string{
			"Mini-LED Pro", "144Hz Game Mode", "Dolby Atmos",
		},
		Specs: map[string]string{
			"Resolution":   "3840 x 2160",
			"Refresh Rate": "144Hz",
			"Peak Nits":    "1500",
		},
		Images: []string{"hisense-75-u8k-front.jpg"},
	},
	{
		ProductID: "prd_iphone_15_pro",
		Slug:      "apple-iphone-15-pro-titanium",
		Name:      "Apple iPhone 15 Pro (256GB) Titanium",
		Brand:     "Apple",
		Price:     165000,
		Category:  "Phones",
		Warranty:  "1 Year Apple Warranty",
		KeyFeatures: []string{
			"A17 Pro chip", "Titanium body", "48MP camera",
		},
		Specs: map[string]string{
			"Storage": "256GB",
			"Display": `6.1" Super Retina XDR`,
		},
		Images: []string{"iphone-15-pro-titanium.jpg"},
	},
	{
		ProductID: "prd_lg_sound_sp8ya",
		Slug:      "lg-sp8ya-soundbar",
		Name:      "LG SP8YA 3.1.2ch Dolby Atmos Soundbar",
		Brand:     "LG",
		Price:     48000,
		Category:  "Audio Systems",
		Warranty:  "1 Year Official Warranty",
		Specs: map[string]string{
			"Channels": "3.1.2",
			"Output":   "440W",
		},
		Images: []string{"lg-sp8ya.jpg"},
	},
	{
		ProductID: "prd_ramtons_fridge",
		Slug:      "ramtons-no-frost-fridge-351l",
		Name:      "Ramtons 351L No-Frost Double Door Fridge",
		Brand:     "Ramtons",
		Price:     78500,
		Category:  "Kitchen Appliances",
		Warranty:  "1 Year Official Warranty",
		Specs: map[string]string{
			"Capacity":     "351L",
			"Energy Class": "A+",
		},
		Images: []string{"ramtons-351l.jpg"},
	},
	{
		ProductID: "prd_vonhotpoint_mw",
		Slug:      "von-hotpoint-microwave-20l",
		Name:      "Von Hotpoint 20L Digital Microwave",
		Brand:     "Von",
		Price:     12500,
		Category:  "Home Appliances",
		Warranty:  "1 Year Official Warranty",
		Specs: map[string]string{
			"Capacity": "20L",
			"Power":    "700W",
		},
		Images: []string{"von-20l-mw.jpg"},
	},
}
