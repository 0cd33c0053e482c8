// models.go - document types for the four collections

package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartSize is the number of item slots preallocated for every new user.
const CartSize = 300

type Product struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          int                `bson:"id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	NewPrice    float64            `bson:"new_price" json:"new_price"`
	AGradePrice float64            `bson:"aGradePrice,omitempty" json:"aGradePrice,omitempty"`
	BGradePrice float64            `bson:"bGradePrice,omitempty" json:"bGradePrice,omitempty"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Unit        string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Size        string             `bson:"size,omitempty" json:"size,omitempty"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Available   bool               `bson:"available" json:"available"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	CartData map[string]int     `bson:"cartData" json:"cartData"`
	Date     time.Time          `bson:"date" json:"date"`
}

// NewCart returns the zeroed fixed-size cart every signup starts with.
func NewCart() map[string]int {
	cart := make(map[string]int, CartSize)
	for i := 0; i < CartSize; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

type Proposal struct {
	SenderName    string    `bson:"senderName" json:"senderName"`
	SenderEmail   string    `bson:"senderEmail" json:"senderEmail"`
	SenderPhone   string    `bson:"senderPhone" json:"senderPhone"`
	SenderMessage string    `bson:"senderMessage" json:"senderMessage"`
	Experience    string    `bson:"experience" json:"experience"`
	Price         string    `bson:"price" json:"price"`
	Date          time.Time `bson:"date" json:"date"`
}

type Work struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          int                `bson:"id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Budget      string             `bson:"budget" json:"budget"`
	Description string             `bson:"description" json:"description"`
	Duration    string             `bson:"duration" json:"duration"`
	PostedBy    string             `bson:"posted_by" json:"posted_by"`
	Proposals   []Proposal         `bson:"proposals" json:"proposals"`
	Date        time.Time          `bson:"date" json:"date"`
}

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkerID      string             `bson:"workerId" json:"workerId"`
	WorkerTitle   string             `bson:"workerTitle" json:"workerTitle"`
	WorkerCost    float64            `bson:"workerCost" json:"workerCost"`
	City          string             `bson:"city" json:"city"`
	ClientName    string             `bson:"clientName" json:"clientName"`
	ClientContact string             `bson:"clientContact" json:"clientContact"`
	Date          string             `bson:"date" json:"date"`
	TotalCost     float64            `bson:"totalCost" json:"totalCost"`
	NumLaborers   int                `bson:"numLaborers" json:"numLaborers"`
}
