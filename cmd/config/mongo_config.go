package config

import (
	"context"
	"log"
	"time"

	"TasteTrail-Backend/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo returns the secondary document database, or nil when the
// dual write is disabled. Callers must treat a nil database as "primary
// store only".
func ConnectMongo() (*mongo.Database, error) {
	if utils.GetConfig("ENABLE_MONGODB_WRITE") != "true" {
		return nil, nil
	}

	uri := utils.GetConfig("MONGO_URI")
	if uri == "" {
		log.Println("ENABLE_MONGODB_WRITE is set but MONGO_URI is empty, skipping mongo connection")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	name := utils.GetConfig("MONGO_DATABASE")
	if name == "" {
		name = "tastetrail"
	}
	return client.Database(name), nil
}
