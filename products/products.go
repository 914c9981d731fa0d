package products

import (
	"log"
	"net/http"
	"strconv"

	"smartduka/db"
	"smartduka/models"
	"smartduka/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pageSize = 12

// GetProducts serves one catalogue page: ?page=N -> { data, nextCursor }.
// nextCursor is null once the catalogue is exhausted, which tells the
// client to stop requesting.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if page < 0 {
		page = 0
	}

	filter := bson.M{}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}

	// fetch one extra row to learn whether another page exists
	opts := options.Find().
		SetSort(bson.M{"productid": 1}).
		SetSkip(page * pageSize).
		SetLimit(pageSize + 1)

	cursor, err := db.ProductsCollection.Find(r.Context(), filter, opts)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var items []models.Product
	if err := cursor.All(r.Context(), &items); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, paginate(items, page, pageSize))
}

// paginate trims the probe row and derives the next cursor.
func paginate(items []models.Product, page, size int64) models.ProductPage {
	result := models.ProductPage{Data: items}
	if int64(len(items)) > size {
		result.Data = items[:size]
		next := page + 1
		result.NextCursor = &next
	}
	if result.Data == nil {
		result.Data = []models.Product{}
	}
	return result
}

// GetProductBySlug renders an empty fallback for unknown slugs.
func GetProductBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var product models.Product
	err := db.ProductsCollection.FindOne(r.Context(), bson.M{"slug": ps.ByName("slug")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProductBySlug error:", err)
		http.Error(w, "Could not retrieve product", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}
