package entity

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
