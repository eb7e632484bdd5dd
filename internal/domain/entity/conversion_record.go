// internal/domain/entity/conversion_record.go
package entity

import (
	"time"
)

type ConversionRecord struct {
	ID            string    `bson:"_id,omitempty"`
	PageURL       string    `bson:"pageUrl"`
	RouteKey      string    `bson:"routeKey,omitempty"` // {departure}-{arrival}
	Direction     string    `bson:"direction"`
	AirportCode   string    `bson:"airportCode"`
	OriginalText  string    `bson:"originalText"`
	Result        string    `bson:"result"`
	InjectedText  string    `bson:"injectedText"`
	OffsetMinutes int       `bson:"offsetMinutes"`
	CreatedAt     time.Time `bson:"createdAt"`
}
