package validators

import "go.mongodb.org/mongo-driver/bson"

// BookingRequestValidator mirrors the accepted payload: required strings,
// nullable optionals and the timestamps written by the store. Formats are
// not checked.
var BookingRequestValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"phone",
			"address",
			"service_type",
			"preferred_date",
			"created_at",
			"updated_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name":           bson.M{"bsonType": "string"},
			"email":          bson.M{"bsonType": "string"},
			"phone":          bson.M{"bsonType": "string"},
			"address":        bson.M{"bsonType": "string"},
			"service_type":   bson.M{"bsonType": "string"},
			"preferred_date": bson.M{"bsonType": "string"},

			"preferred_time": bson.M{
				"bsonType": []string{"string", "null"},
			},

			"bedrooms": bson.M{
				"bsonType": []string{"int", "long", "null"},
			},

			"bathrooms": bson.M{
				"bsonType": []string{"int", "long", "null"},
			},

			"notes": bson.M{
				"bsonType": []string{"string", "null"},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
