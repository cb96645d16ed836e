package main

import (
	"plaza/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MarketplaceListingModel{},
		model.ServiceProviderModel{},
		model.EventModel{},
		model.ServiceRequestModel{},
		model.ConversationModel{},
		model.MessageModel{},
		model.ReviewModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
