package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserPreference is the stored work-hour document of a user.
type UserPreference struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	StartTimes []DayTime          `bson:"startTimes"`
	EndTimes   []DayTime          `bson:"endTimes"`
}

// DayTime is a wall time for an ISO weekday (1 = Monday, 7 = Sunday).
type DayTime struct {
	Day     int `bson:"day"`
	Hour    int `bson:"hour"`
	Minutes int `bson:"minutes"`
}
