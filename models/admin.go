package models

// Admin is an operator account. It is a passive record in this service; no
// login flow is exposed.
type Admin struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	IsSuperadmin bool   `bson:"isSuperadmin" json:"isSuperadmin"`
}
