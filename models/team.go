package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// MunicipalTeam is a municipal unit scoped to exactly one city. Team actors
// authenticate separately from citizens and are the only actors allowed to
// transition issue status.
type MunicipalTeam struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamName     string             `bson:"teamName" json:"teamName"`
	CityName     string             `bson:"cityName" json:"cityName"`
	StateName    string             `bson:"stateName" json:"stateName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"`
	ContactEmail string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *MunicipalTeam) HashPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	t.PasswordHash = string(hashed)
	return nil
}

func (t *MunicipalTeam) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(candidate))
	return err == nil
}
