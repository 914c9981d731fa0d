package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductsCollection *mongo.Collection
	OrdersCollection   *mongo.Collection
	UserCollection     *mongo.Collection
	BookingsCollection *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ProductsCollection = Client.Database("dukadb").Collection("products")
	OrdersCollection = Client.Database("dukadb").Collection("orders")
	UserCollection = Client.Database("dukadb").Collection("users")
	BookingsCollection = Client.Database("dukadb").Collection("bookings")
}
