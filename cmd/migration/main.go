package main

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/drivers/database"
	"carepulse-service/internal/app/drivers/logger"
	"carepulse-service/internal/app/services/shared/documentstore"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db := database.NewMongoDB(ctx, driverConfig)
	defer func() {
		err := db.Client().Disconnect(context.Background())
		if err != nil {
			log.WithError(err).Error("Error disconnecting from MongoDB")
		}
	}()

	specs := documentstore.Indexes()
	log.WithFields(logrus.Fields{
		"database": driverConfig.MongoDB.DbName,
		"indexes":  len(specs),
	}).Info("Applying indexes")

	names, err := documentstore.EnsureIndexes(ctx, db, specs)
	if err != nil {
		log.WithError(err).Fatal("Error applying indexes")
	}

	for _, name := range names {
		log.WithField("index", name).Info("Index ensured")
	}
	log.Infof("Applied %d indexes!", len(names))
}
