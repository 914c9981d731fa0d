package products

import (
	"log"
	"net/http"
	"path/filepath"

	"smartduka/db"
	"smartduka/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const productPicDir = "static/productpic"

// UploadProductImage stores a catalogue image plus a 400x300 thumbnail
// and appends the filename to the product's image list. Admin surface
// for the business manager console.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID := ps.ByName("productid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		log.Println("UploadProductImage decode error:", err)
		http.Error(w, "Unreadable image", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(productPicDir); err != nil {
		http.Error(w, "Storage unavailable", http.StatusInternalServerError)
		return
	}
	if err := utils.EnsureDir(productPicDir + "/thumb"); err != nil {
		http.Error(w, "Storage unavailable", http.StatusInternalServerError)
		return
	}

	name := uuid.NewString() + ".jpg"
	if err := imaging.Save(img, filepath.Join(productPicDir, name)); err != nil {
		log.Println("UploadProductImage save error:", err)
		http.Error(w, "Could not save image", http.StatusInternalServerError)
		return
	}

	thumb := imaging.Fill(img, 400, 300, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(productPicDir, "thumb", name)); err != nil {
		log.Println("UploadProductImage thumb error:", err)
		http.Error(w, "Could not save thumbnail", http.StatusInternalServerError)
		return
	}

	res, err := db.ProductsCollection.UpdateOne(r.Context(),
		bson.M{"productid": productID},
		bson.M{"$push": bson.M{"images": name}},
	)
	if err != nil || res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"image": name})
}
